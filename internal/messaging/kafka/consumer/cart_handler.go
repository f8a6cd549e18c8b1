package consumer

import (
	"context"
	"encoding/json"
	"log"

	"go-cart-api/internal/store/cloudstore"
)

type OrderPlacedPayload struct {
	UserID string `json:"user_id"`
}

// handleOrderPlaced drops the account's cloud cart once its order went
// through. The next session reads the missing document as an empty cart.
func handleOrderPlaced(ctx context.Context, payload []byte, store cloudstore.Store) error {
	var data OrderPlacedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}
	if data.UserID == "" {
		log.Println("[CONSUMER] ORDER_PLACED without user_id, skipping")
		return nil
	}

	log.Printf("[CONSUMER] Clearing cart for user: %s", data.UserID)

	if err := store.DeleteCart(ctx, data.UserID); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Cart cleared successfully for user: %s", data.UserID)
	return nil
}

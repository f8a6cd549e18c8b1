package checkout

import (
	"time"

	"go-cart-api/internal/cart"
)

type QuoteResponse struct {
	Totals     cart.TotalsResponse `json:"totals"`
	ItemCount  int                 `json:"itemCount"`
	CouponCode string              `json:"couponCode,omitempty"`
}

type CheckoutResponse struct {
	CheckoutID string              `json:"checkoutId"`
	Totals     cart.TotalsResponse `json:"totals"`
}

// CheckoutEvent is the snapshot published to order.events when a cart checks
// out. The order service downstream owns everything after this point.
type CheckoutEvent struct {
	CheckoutID string              `json:"checkout_id"`
	DeviceID   string              `json:"device_id"`
	UserID     string              `json:"user_id,omitempty"`
	Items      []CheckoutEventItem `json:"items"`
	Subtotal   string              `json:"subtotal"`
	Shipping   string              `json:"shipping"`
	Discount   string              `json:"discount"`
	Total      string              `json:"total"`
	CouponCode string              `json:"coupon_code,omitempty"`
	CapturedAt time.Time           `json:"captured_at"`
}

type CheckoutEventItem struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

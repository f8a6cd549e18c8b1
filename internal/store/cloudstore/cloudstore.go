package cloudstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"go-cart-api/internal/cart/model"
)

// Store is the account-scoped cart store. All operations require a resolved
// identity (the account's user ID); callers without one must not reach here.
//
//go:generate mockgen -source=cloudstore.go -destination=../../mock/cloudstore/cloudstore_mock.go -package=mock
type Store interface {
	// GetCart returns (nil, nil) when the account has no stored model.
	GetCart(ctx context.Context, identity string) (*model.Cart, error)
	PutCart(ctx context.Context, identity string, c model.Cart) error
	DeleteCart(ctx context.Context, identity string) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis returns a Store keeping carts as JSON documents at
// cart:user:<identity>. A zero ttl keeps carts until explicitly deleted.
func NewRedis(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func cartKey(identity string) string {
	return "cart:user:" + identity
}

func (s *redisStore) GetCart(ctx context.Context, identity string) (*model.Cart, error) {
	raw, err := s.client.Get(ctx, cartKey(identity)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cloudstore get: %w", err)
	}

	var c model.Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		// A corrupt document reads as "no cart" rather than wedging the
		// session; the next write replaces it.
		return nil, nil
	}
	return &c, nil
}

func (s *redisStore) PutCart(ctx context.Context, identity string, c model.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("cloudstore marshal: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(identity), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("cloudstore put: %w", err)
	}
	return nil
}

func (s *redisStore) DeleteCart(ctx context.Context, identity string) error {
	if err := s.client.Del(ctx, cartKey(identity)).Err(); err != nil {
		return fmt.Errorf("cloudstore delete: %w", err)
	}
	return nil
}

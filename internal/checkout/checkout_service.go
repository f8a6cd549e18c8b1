package checkout

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-cart-api/internal/cart"
	"go-cart-api/internal/messaging/kafka/producer"
	"go-cart-api/internal/pricing"
)

// CouponRedeemer burns a use of a coupon code once its order went out.
// Supplied by the coupon feature.
type CouponRedeemer interface {
	Redeem(ctx context.Context, code string) error
}

//go:generate mockgen -source=checkout_service.go -destination=../mock/checkout/checkout_service_mock.go -package=mock
type Service interface {
	Quote(ctx context.Context, sess cart.Session) (QuoteResponse, error)
	Checkout(ctx context.Context, sess cart.Session) (CheckoutResponse, error)
}

type service struct {
	carts     cart.Service
	quoter    *pricing.Quoter
	publisher producer.Publisher
	coupons   CouponRedeemer
	nowFunc   func() time.Time
}

func NewService(carts cart.Service, quoter *pricing.Quoter, publisher producer.Publisher, coupons CouponRedeemer) Service {
	return &service{
		carts:     carts,
		quoter:    quoter,
		publisher: publisher,
		coupons:   coupons,
		nowFunc:   time.Now,
	}
}

// Quote prices the session cart against the current rule snapshot and the
// applied coupon.
func (s *service) Quote(ctx context.Context, sess cart.Session) (QuoteResponse, error) {
	snapshot, err := s.carts.Snapshot(ctx, sess)
	if err != nil {
		return QuoteResponse{}, err
	}

	totals := s.quoter.Price(ctx, snapshot)

	res := QuoteResponse{
		Totals:    pricing.FormatTotals(totals),
		ItemCount: len(snapshot.Items),
	}
	if snapshot.AppliedCoupon != nil {
		res.CouponCode = snapshot.AppliedCoupon.Code
	}
	return res, nil
}

// Checkout publishes the priced cart snapshot for the order service, records
// the coupon use, and clears the session cart. Payment authorization happens
// downstream.
func (s *service) Checkout(ctx context.Context, sess cart.Session) (CheckoutResponse, error) {
	snapshot, err := s.carts.Snapshot(ctx, sess)
	if err != nil {
		return CheckoutResponse{}, err
	}
	if len(snapshot.Items) == 0 {
		return CheckoutResponse{}, ErrEmptyCart
	}

	totals := s.quoter.Price(ctx, snapshot)
	if len(totals.ValidationErrors) > 0 {
		return CheckoutResponse{}, ErrCheckoutBlocked
	}

	event := s.buildEvent(sess, snapshot, totals)
	payload, err := json.Marshal(event)
	if err != nil {
		return CheckoutResponse{}, ErrPublishFailed
	}

	key := sess.Identity
	if key == "" {
		key = sess.DeviceID
	}
	if err := s.publisher.Publish(ctx, key, "CART_CHECKED_OUT", payload); err != nil {
		log.Printf("[API] checkout publish failed for %s: %v", key, err)
		return CheckoutResponse{}, ErrPublishFailed
	}

	if snapshot.AppliedCoupon != nil {
		// The order is already on its way; a failed use count only means the
		// code stays redeemable a little longer.
		if err := s.coupons.Redeem(ctx, snapshot.AppliedCoupon.Code); err != nil {
			log.Printf("[API] coupon redeem failed for %s: %v", snapshot.AppliedCoupon.Code, err)
		}
	}

	if err := s.carts.Clear(ctx, sess); err != nil {
		// A clear failure only leaves a stale cart behind, which the next
		// sync overwrites.
		log.Printf("[API] cart clear after checkout failed for %s: %v", key, err)
	}

	return CheckoutResponse{
		CheckoutID: event.CheckoutID,
		Totals:     pricing.FormatTotals(totals),
	}, nil
}

func (s *service) buildEvent(sess cart.Session, snapshot cart.Cart, totals pricing.Totals) CheckoutEvent {
	items := make([]CheckoutEventItem, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		price := item.EffectivePrice()
		items = append(items, CheckoutEventItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: price.StringFixed(2),
			LineTotal: price.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2),
		})
	}

	event := CheckoutEvent{
		CheckoutID: uuid.New().String(),
		DeviceID:   sess.DeviceID,
		UserID:     sess.Identity,
		Items:      items,
		Subtotal:   totals.Subtotal.StringFixed(2),
		Shipping:   totals.ShippingCost.StringFixed(2),
		Discount:   totals.Discount.StringFixed(2),
		Total:      totals.Total.StringFixed(2),
		CapturedAt: s.nowFunc(),
	}
	if snapshot.AppliedCoupon != nil {
		event.CouponCode = snapshot.AppliedCoupon.Code
	}
	return event
}

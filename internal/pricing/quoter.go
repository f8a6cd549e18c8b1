package pricing

import (
	"context"
	"log"

	"go-cart-api/internal/cart"
	"go-cart-api/internal/rule"
)

// Quoter prices cart snapshots against the live rule set. Rule fetch trouble
// degrades to an empty snapshot so every caller still gets an answer with
// standard shipping and no rule discounts.
type Quoter struct {
	rules rule.Repository
	cfg   Config
}

func NewQuoter(rules rule.Repository, cfg Config) *Quoter {
	return &Quoter{rules: rules, cfg: cfg}
}

// Price fetches the active rules and prices the cart, coupon included.
func (q *Quoter) Price(ctx context.Context, c cart.Cart) Totals {
	rules, err := q.rules.ListActive(ctx)
	if err != nil {
		log.Printf("[API] rule fetch failed, pricing with empty snapshot: %v", err)
		rules = nil
	}

	totals := Compute(c.Items, rules, q.cfg)
	return ApplyCoupon(totals, c.AppliedCoupon)
}

// Totals implements cart.TotalsSource.
func (q *Quoter) Totals(ctx context.Context, c cart.Cart) cart.TotalsResponse {
	return FormatTotals(q.Price(ctx, c))
}

// FormatTotals renders a pricing breakdown as fixed 2-decimal strings for
// client responses.
func FormatTotals(t Totals) cart.TotalsResponse {
	return cart.TotalsResponse{
		Subtotal:         t.Subtotal.StringFixed(2),
		ShippingCost:     t.ShippingCost.StringFixed(2),
		Discount:         t.Discount.StringFixed(2),
		Total:            t.Total.StringFixed(2),
		ValidationErrors: t.ValidationErrors,
		AppliedBenefits:  t.AppliedBenefits,
	}
}

package pricing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"go-cart-api/internal/cart"
	"go-cart-api/internal/rule"
)

// Config carries the caller-supplied fallbacks the engine needs. The standard
// shipping rate applies whenever no SHIPPING rule matches.
type Config struct {
	StandardShippingRate decimal.Decimal
}

// Totals is the derived pricing breakdown for a cart. It is never persisted;
// it is recomputed on demand from the item and rule snapshots.
type Totals struct {
	Subtotal         decimal.Decimal `json:"subtotal"`
	ShippingCost     decimal.Decimal `json:"shippingCost"`
	Discount         decimal.Decimal `json:"discount"`
	Total            decimal.Decimal `json:"total"`
	ValidationErrors []string        `json:"validationErrors"`
	AppliedBenefits  []string        `json:"appliedBenefits"`
}

// Compute prices a cart against a rule snapshot. Pure and deterministic:
// the same items and rules always produce the same Totals. Intermediate sums
// keep full precision; only the final total is rounded to 2 decimals.
//
// Rule semantics, in priority order (ties broken by rule ID):
//   - RESTRICTION rules below their minimum append a validation error and
//     never touch price fields.
//   - The first satisfied SHIPPING rule zeroes the shipping cost; remaining
//     shipping rules are not evaluated. No match falls back to the standard rate.
//   - Only the highest-priority satisfied DISCOUNT rule applies, capped at the
//     subtotal. Discount rules never stack with each other.
//   - Every satisfied BENEFIT rule contributes its name; benefits stack.
func Compute(items []cart.LineItem, rules []rule.CartRule, cfg Config) Totals {
	subtotal := cart.Subtotal(items)
	snapshot := sortedActive(rules)

	totals := Totals{
		Subtotal:         subtotal,
		ShippingCost:     cfg.StandardShippingRate,
		Discount:         decimal.Zero,
		ValidationErrors: []string{},
		AppliedBenefits:  []string{},
	}

	for _, r := range snapshot {
		value, ok := ruleValue(r)
		if !ok {
			continue
		}

		switch r.Type {
		case rule.TypeRestriction:
			if subtotal.LessThan(value) {
				totals.ValidationErrors = append(totals.ValidationErrors, fmt.Sprintf(
					"%s: minimum order value %s not met, short by %s",
					r.Name, value.StringFixed(2), value.Sub(subtotal).StringFixed(2),
				))
			}
		case rule.TypeBenefit:
			if subtotal.GreaterThanOrEqual(value) {
				totals.AppliedBenefits = append(totals.AppliedBenefits, r.Name)
			}
		}
	}

	// First-match-wins: the highest-priority satisfied threshold grants free
	// shipping and stops the scan. Unsatisfied rules are skipped, so a looser
	// threshold at lower priority still gets its chance.
	for _, r := range snapshot {
		if r.Type != rule.TypeShipping {
			continue
		}
		value, ok := ruleValue(r)
		if !ok {
			continue
		}
		if subtotal.GreaterThanOrEqual(value) {
			totals.ShippingCost = decimal.Zero
			break
		}
	}

	// At most one discount rule applies.
	for _, r := range snapshot {
		if r.Type != rule.TypeDiscount {
			continue
		}
		value, ok := ruleValue(r)
		if !ok {
			continue
		}
		discount := subtotal.Mul(value).Div(decimal.NewFromInt(100))
		if discount.GreaterThan(subtotal) {
			discount = subtotal
		}
		totals.Discount = discount
		break
	}

	totals.Total = finalTotal(totals.Subtotal, totals.ShippingCost, totals.Discount)
	return totals
}

// ApplyCoupon composes an externally resolved coupon with the rule-engine
// result. The combined discount is additive: rules are storewide policy,
// coupons are a customer-specific promotion, and the two stack. The
// non-negative clamp on the total is the only ceiling.
func ApplyCoupon(totals Totals, coupon *cart.AppliedCoupon) Totals {
	if coupon == nil {
		return totals
	}
	totals.Discount = totals.Discount.Add(coupon.DiscountAmount)
	totals.Total = finalTotal(totals.Subtotal, totals.ShippingCost, totals.Discount)
	return totals
}

func finalTotal(subtotal, shipping, discount decimal.Decimal) decimal.Decimal {
	total := subtotal.Add(shipping).Sub(discount).Round(2)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// ruleValue extracts a usable threshold/percentage. Missing or negative
// values make the rule a no-op instead of crashing the calculation.
func ruleValue(r rule.CartRule) (decimal.Decimal, bool) {
	if !r.Value.Valid || r.Value.Decimal.IsNegative() {
		return decimal.Decimal{}, false
	}
	return r.Value.Decimal, true
}

func sortedActive(rules []rule.CartRule) []rule.CartRule {
	snapshot := make([]rule.CartRule, 0, len(rules))
	for _, r := range rules {
		if r.Status == rule.StatusActive {
			snapshot = append(snapshot, r)
		}
	}
	sort.SliceStable(snapshot, func(i, j int) bool {
		if snapshot[i].Priority != snapshot[j].Priority {
			return snapshot[i].Priority < snapshot[j].Priority
		}
		return snapshot[i].ID < snapshot[j].ID
	})
	return snapshot
}

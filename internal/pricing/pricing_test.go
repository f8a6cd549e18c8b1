package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"go-cart-api/internal/cart"
	"go-cart-api/internal/pricing"
	"go-cart-api/internal/rule"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: dec(s), Valid: true}
}

func activeRule(id, name string, typ rule.Type, priority int, value decimal.NullDecimal) rule.CartRule {
	return rule.CartRule{
		ID:       id,
		Name:     name,
		Type:     typ,
		Priority: priority,
		Value:    value,
		Status:   rule.StatusActive,
	}
}

func testConfig() pricing.Config {
	return pricing.Config{StandardShippingRate: dec("30")}
}

func TestCompute_EmptyCart(t *testing.T) {
	totals := pricing.Compute(nil, nil, testConfig())

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.ShippingCost.Equal(dec("30")))
	assert.True(t, totals.Discount.IsZero())
	assert.True(t, totals.Total.Equal(dec("30")))
	assert.Empty(t, totals.ValidationErrors)
	assert.Empty(t, totals.AppliedBenefits)
}

func TestCompute_Deterministic(t *testing.T) {
	items := []cart.LineItem{
		{ProductID: "p1", UnitPrice: dec("49.99"), Quantity: 3},
		{ProductID: "p2", UnitPrice: dec("10.00"), Quantity: 1},
	}
	rules := []rule.CartRule{
		activeRule("r1", "10% off", rule.TypeDiscount, 1, nullDec("10")),
		activeRule("r2", "Free shipping over 100", rule.TypeShipping, 2, nullDec("100")),
	}

	first := pricing.Compute(items, rules, testConfig())
	second := pricing.Compute(items, rules, testConfig())

	assert.Equal(t, first, second)
}

func TestCompute_Shipping(t *testing.T) {
	t.Run("no_match_uses_standard_rate", func(t *testing.T) {
		items := []cart.LineItem{{ProductID: "p1", UnitPrice: dec("40"), Quantity: 1}}
		rules := []rule.CartRule{
			activeRule("r1", "Free shipping over 100", rule.TypeShipping, 1, nullDec("100")),
		}

		totals := pricing.Compute(items, rules, testConfig())
		assert.True(t, totals.ShippingCost.Equal(dec("30")))
	})

	t.Run("first_satisfied_rule_wins", func(t *testing.T) {
		// Priority 1 demands 500 and is not satisfied; priority 2 demands 100
		// and is. The satisfied rule grants free shipping even though a stricter
		// one sits above it.
		items := []cart.LineItem{{ProductID: "p1", UnitPrice: dec("150"), Quantity: 1}}
		rules := []rule.CartRule{
			activeRule("r1", "Free shipping over 500", rule.TypeShipping, 1, nullDec("500")),
			activeRule("r2", "Free shipping over 100", rule.TypeShipping, 2, nullDec("100")),
		}

		totals := pricing.Compute(items, rules, testConfig())
		assert.True(t, totals.ShippingCost.IsZero())
		assert.True(t, totals.Total.Equal(dec("150")))
	})

	t.Run("paused_rule_ignored", func(t *testing.T) {
		items := []cart.LineItem{{ProductID: "p1", UnitPrice: dec("150"), Quantity: 1}}
		paused := activeRule("r1", "Free shipping over 100", rule.TypeShipping, 1, nullDec("100"))
		paused.Status = rule.StatusPaused

		totals := pricing.Compute(items, []rule.CartRule{paused}, testConfig())
		assert.True(t, totals.ShippingCost.Equal(dec("30")))
	})
}

func TestCompute_Discount(t *testing.T) {
	t.Run("percentage_of_subtotal", func(t *testing.T) {
		items := []cart.LineItem{{ProductID: "p1", UnitPrice: dec("200"), Quantity: 1}}
		rules := []rule.CartRule{
			activeRule("r1", "10% off", rule.TypeDiscount, 1, nullDec("10")),
		}

		totals := pricing.Compute(items, rules, testConfig())
		assert.True(t, totals.Discount.Equal(dec("20")))
		assert.True(t, totals.Total.Equal(dec("210")))
	})

	t.Run("discounts_do_not_stack", func(t *testing.T) {
		items := []cart.LineItem{{ProductID: "p1", UnitPrice: dec("100"), Quantity: 1}}
		rules := []rule.CartRule{
			activeRule("r2", "5% off", rule.TypeDiscount, 2, nullDec("5")),
			activeRule("r1", "10% off", rule.TypeDiscount, 1, nullDec("10")),
		}

		totals := pricing.Compute(items, rules, testConfig())
		assert.True(t, totals.Discount.Equal(dec("10")), "only the higher-priority discount applies")
	})

	t.Run("equal_priority_tie_broken_by_id", func(t *testing.T) {
		items := []cart.LineItem{{ProductID: "p1", UnitPrice: dec("100"), Quantity: 1}}
		rules := []rule.CartRule{
			activeRule("rb", "20% off", rule.TypeDiscount, 1, nullDec("20")),
			activeRule("ra", "10% off", rule.TypeDiscount, 1, nullDec("10")),
		}

		totals := pricing.Compute(items, rules, testConfig())
		assert.True(t, totals.Discount.Equal(dec("10")))
	})

	t.Run("capped_at_subtotal", func(t *testing.T) {
		items := []cart.LineItem{{ProductID: "p1", UnitPrice: dec("50"), Quantity: 1}}
		rules := []rule.CartRule{
			activeRule("r1", "150% off", rule.TypeDiscount, 1, nullDec("150")),
		}

		totals := pricing.Compute(items, rules, testConfig())
		assert.True(t, totals.Discount.Equal(dec("50")))
		assert.True(t, totals.Total.Equal(dec("30")), "shipping survives a full discount")
	})
}

func TestCompute_Restriction(t *testing.T) {
	items := []cart.LineItem{{ProductID: "p1", UnitPrice: dec("40"), Quantity: 1}}
	rules := []rule.CartRule{
		activeRule("r1", "Minimum order", rule.TypeRestriction, 1, nullDec("50")),
	}

	totals := pricing.Compute(items, rules, testConfig())

	assert.Len(t, totals.ValidationErrors, 1)
	assert.Contains(t, totals.ValidationErrors[0], "Minimum order")
	assert.Contains(t, totals.ValidationErrors[0], "short by 10.00")
	// Restrictions report, they never touch price fields.
	assert.True(t, totals.Subtotal.Equal(dec("40")))
	assert.True(t, totals.Discount.IsZero())
	assert.True(t, totals.Total.Equal(dec("70")))
}

func TestCompute_Benefits(t *testing.T) {
	items := []cart.LineItem{{ProductID: "p1", UnitPrice: dec("120"), Quantity: 1}}
	rules := []rule.CartRule{
		activeRule("r1", "Free gift wrap", rule.TypeBenefit, 1, nullDec("100")),
		activeRule("r2", "Priority support", rule.TypeBenefit, 2, nullDec("50")),
		activeRule("r3", "VIP lounge", rule.TypeBenefit, 3, nullDec("500")),
	}

	totals := pricing.Compute(items, rules, testConfig())

	assert.Equal(t, []string{"Free gift wrap", "Priority support"}, totals.AppliedBenefits)
	assert.True(t, totals.Total.Equal(dec("150")))
}

func TestCompute_NullAndNegativeValues(t *testing.T) {
	items := []cart.LineItem{{ProductID: "p1", UnitPrice: dec("100"), Quantity: 1}}
	rules := []rule.CartRule{
		activeRule("r1", "Broken discount", rule.TypeDiscount, 1, decimal.NullDecimal{}),
		activeRule("r2", "Negative shipping", rule.TypeShipping, 2, decimal.NullDecimal{Decimal: dec("-10"), Valid: true}),
	}

	totals := pricing.Compute(items, rules, testConfig())

	assert.True(t, totals.Discount.IsZero())
	assert.True(t, totals.ShippingCost.Equal(dec("30")))
	assert.Empty(t, totals.ValidationErrors)
}

func TestCompute_SalePriceUsed(t *testing.T) {
	sale := dec("80")
	items := []cart.LineItem{
		{ProductID: "p1", UnitPrice: dec("100"), SalePrice: &sale, Quantity: 2},
	}

	totals := pricing.Compute(items, nil, testConfig())
	assert.True(t, totals.Subtotal.Equal(dec("160")))
}

func TestApplyCoupon(t *testing.T) {
	items := []cart.LineItem{{ProductID: "p1", UnitPrice: dec("200"), Quantity: 1}}
	rules := []rule.CartRule{
		activeRule("r1", "10% off", rule.TypeDiscount, 1, nullDec("10")),
	}

	t.Run("stacks_with_rule_discount", func(t *testing.T) {
		totals := pricing.Compute(items, rules, testConfig())
		totals = pricing.ApplyCoupon(totals, &cart.AppliedCoupon{
			Code:           "SAVE20",
			DiscountType:   cart.DiscountFixedAmount,
			DiscountAmount: dec("20"),
		})

		assert.True(t, totals.Discount.Equal(dec("40")))
		assert.True(t, totals.Total.Equal(dec("190")))
	})

	t.Run("nil_coupon_is_noop", func(t *testing.T) {
		before := pricing.Compute(items, rules, testConfig())
		after := pricing.ApplyCoupon(before, nil)
		assert.Equal(t, before, after)
	})

	t.Run("total_never_negative", func(t *testing.T) {
		small := []cart.LineItem{{ProductID: "p1", UnitPrice: dec("10"), Quantity: 1}}
		totals := pricing.Compute(small, nil, testConfig())
		totals = pricing.ApplyCoupon(totals, &cart.AppliedCoupon{
			Code:           "HUGE",
			DiscountType:   cart.DiscountFixedAmount,
			DiscountAmount: dec("1000"),
		})

		assert.True(t, totals.Total.IsZero())
	})
}

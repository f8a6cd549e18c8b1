package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"go-cart-api/internal/cart"
)

func TestCart_AddItem(t *testing.T) {
	t.Run("repeated_adds_increment_quantity", func(t *testing.T) {
		var c cart.Cart
		c.AddItem(item("X", "10", 2))
		c.AddItem(item("X", "10", 3))

		assert.Len(t, c.Items, 1)
		assert.Equal(t, 5, c.Items[0].Quantity)
	})

	t.Run("quantity_clamped_to_max", func(t *testing.T) {
		capped := item("X", "10", 3)
		capped.MaxQuantity = 4

		var c cart.Cart
		c.AddItem(capped)
		c.AddItem(capped)

		assert.Equal(t, 4, c.Items[0].Quantity)
	})

	t.Run("non_positive_quantity_becomes_one", func(t *testing.T) {
		var c cart.Cart
		c.AddItem(item("X", "10", 0))

		assert.Equal(t, 1, c.Items[0].Quantity)
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	var c cart.Cart
	c.AddItem(item("X", "10", 2))

	assert.True(t, c.UpdateQuantity("X", 7))
	assert.Equal(t, 7, c.Items[0].Quantity)

	assert.False(t, c.UpdateQuantity("missing", 1))

	// Zero removes the row.
	assert.True(t, c.UpdateQuantity("X", 0))
	assert.Empty(t, c.Items)
}

func TestCart_Coupon(t *testing.T) {
	var c cart.Cart
	c.ApplyCoupon(cart.AppliedCoupon{Code: "A", DiscountType: cart.DiscountFixedAmount, DiscountAmount: decimal.NewFromInt(5)})
	c.ApplyCoupon(cart.AppliedCoupon{Code: "B", DiscountType: cart.DiscountFixedAmount, DiscountAmount: decimal.NewFromInt(10)})

	// One coupon at a time; the newest replaces.
	assert.Equal(t, "B", c.AppliedCoupon.Code)

	c.RemoveCoupon()
	assert.Nil(t, c.AppliedCoupon)
}

func TestCart_Clone(t *testing.T) {
	var c cart.Cart
	c.AddItem(item("X", "10", 2))
	c.ApplyCoupon(cart.AppliedCoupon{Code: "A", DiscountType: cart.DiscountFixedAmount, DiscountAmount: decimal.NewFromInt(5)})

	clone := c.Clone()
	clone.Items[0].Quantity = 99
	clone.AppliedCoupon.Code = "MUTATED"

	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, "A", c.AppliedCoupon.Code)
}

func TestSubtotal(t *testing.T) {
	sale := decimal.NewFromInt(8)
	items := []cart.LineItem{
		{ProductID: "X", UnitPrice: decimal.NewFromInt(10), Quantity: 2},
		{ProductID: "Y", UnitPrice: decimal.NewFromInt(10), SalePrice: &sale, Quantity: 1},
		{ProductID: "Z", UnitPrice: decimal.NewFromInt(100), Quantity: 0},
	}

	assert.True(t, cart.Subtotal(items).Equal(decimal.NewFromInt(28)))
}

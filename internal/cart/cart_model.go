package cart

import (
	"github.com/shopspring/decimal"

	"go-cart-api/internal/cart/model"
)

// The cart aggregate types live in the model subpackage so that store and
// sync packages can depend on them without importing this package (which
// imports those packages back). The aliases keep cart.Cart etc. as the
// canonical names for the rest of the codebase.

type DiscountType = model.DiscountType

const (
	DiscountPercentage  = model.DiscountPercentage
	DiscountFixedAmount = model.DiscountFixedAmount
)

type LineItem = model.LineItem

type AppliedCoupon = model.AppliedCoupon

type Cart = model.Cart

// Subtotal sums effective price times quantity over the given items with
// full precision. Rows with non-positive quantity contribute nothing.
func Subtotal(items []LineItem) decimal.Decimal {
	return model.Subtotal(items)
}

func clampQuantity(qty, max int) int {
	return model.ClampQuantity(qty, max)
}

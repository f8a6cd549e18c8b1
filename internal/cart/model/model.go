package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
)

// LineItem is a single product row in a cart. A cart holds at most one
// row per product; repeated adds increment the quantity instead.
type LineItem struct {
	ProductID   string           `json:"productId"`
	Title       string           `json:"title"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	SalePrice   *decimal.Decimal `json:"salePrice,omitempty"`
	Quantity    int              `json:"quantity"`
	MaxQuantity int              `json:"maxQuantity"`
	ImageURL    string           `json:"imageUrl,omitempty"`
}

// EffectivePrice returns the sale price when present, otherwise the unit price.
func (li LineItem) EffectivePrice() decimal.Decimal {
	if li.SalePrice != nil {
		return *li.SalePrice
	}
	return li.UnitPrice
}

// AppliedCoupon is a pre-resolved, already-validated discount. The amount is
// concrete money; percentage coupons are resolved to an amount at validation
// time against the order total.
type AppliedCoupon struct {
	Code           string          `json:"code"`
	DiscountType   DiscountType    `json:"discountType"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
}

// Cart is the persisted aggregate: the ordered line items plus the optional
// coupon. It is owned by exactly one session (guest device or account).
type Cart struct {
	Items         []LineItem     `json:"items"`
	AppliedCoupon *AppliedCoupon `json:"appliedCoupon,omitempty"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0 && c.AppliedCoupon == nil
}

// Subtotal sums effective price times quantity over the given items with
// full precision. Rows with non-positive quantity contribute nothing.
func Subtotal(items []LineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		subtotal = subtotal.Add(item.EffectivePrice().Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

func ClampQuantity(qty, max int) int {
	if qty < 1 {
		qty = 1
	}
	if max > 0 && qty > max {
		qty = max
	}
	return qty
}

// AddItem inserts a new row or increments the quantity of an existing one.
// Quantities are clamped to [1, MaxQuantity].
func (c *Cart) AddItem(item LineItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity = ClampQuantity(c.Items[i].Quantity+item.Quantity, c.Items[i].MaxQuantity)
			return
		}
	}
	item.Quantity = ClampQuantity(item.Quantity, item.MaxQuantity)
	c.Items = append(c.Items, item)
}

// UpdateQuantity sets the quantity for a product. A quantity of zero or less
// removes the row. Returns false when the product is not in the cart.
func (c *Cart) UpdateQuantity(productID string, qty int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if qty <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
				return true
			}
			c.Items[i].Quantity = ClampQuantity(qty, c.Items[i].MaxQuantity)
			return true
		}
	}
	return false
}

// RemoveItem deletes a product row. Returns false when not present.
func (c *Cart) RemoveItem(productID string) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// ApplyCoupon replaces any previously applied coupon. Coupons never stack.
func (c *Cart) ApplyCoupon(coupon AppliedCoupon) {
	c.AppliedCoupon = &coupon
}

func (c *Cart) RemoveCoupon() {
	c.AppliedCoupon = nil
}

// Clear empties the cart in place.
func (c *Cart) Clear() {
	c.Items = nil
	c.AppliedCoupon = nil
}

// Clone returns a deep copy safe to hand out of the session lock.
func (c Cart) Clone() Cart {
	out := c
	out.Items = make([]LineItem, len(c.Items))
	copy(out.Items, c.Items)
	if c.AppliedCoupon != nil {
		coupon := *c.AppliedCoupon
		out.AppliedCoupon = &coupon
	}
	return out
}

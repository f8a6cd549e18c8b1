package coupon

import (
	"time"

	"github.com/shopspring/decimal"
)

// Discount type constants, matching the values stored in coupon_codes.
const (
	DiscountTypePercentage  = "PERCENTAGE"
	DiscountTypeFixedAmount = "FIXED_AMOUNT"
)

// Code is a merchant-issued coupon as stored in the coupon_codes table.
type Code struct {
	ID             string
	Code           string
	Description    string
	DiscountType   string
	DiscountValue  decimal.Decimal
	MinOrderAmount decimal.Decimal
	MaxUses        *int
	UsedCount      int
	Active         bool
	StartDate      time.Time
	EndDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

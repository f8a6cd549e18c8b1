package rule

import "github.com/shopspring/decimal"

type Type string

const (
	TypeShipping    Type = "SHIPPING"
	TypeDiscount    Type = "DISCOUNT"
	TypeRestriction Type = "RESTRICTION"
	TypeBenefit     Type = "BENEFIT"
)

type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusPaused Status = "PAUSED"
)

// CartRule is a merchant-configured pricing policy. Lower priority numbers
// evaluate earlier. The meaning of Value depends on Type:
//
//	SHIPPING    subtotal threshold at/above which shipping is free
//	DISCOUNT    percentage (0-100) applied to the subtotal
//	RESTRICTION minimum subtotal required for checkout
//	BENEFIT     minimum subtotal unlocking a named non-monetary perk
//
// A null Value makes the rule a no-op rather than an error.
type CartRule struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Type        Type                `json:"type"`
	Priority    int                 `json:"priority"`
	Value       decimal.NullDecimal `json:"value"`
	Status      Status              `json:"status"`
	Description string              `json:"description,omitempty"`
}

package cart

type AddItemRequest struct {
	ProductID string   `json:"productId" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	UnitPrice float64  `json:"unitPrice" validate:"gt=0"`
	SalePrice *float64 `json:"salePrice,omitempty" validate:"omitempty,gt=0"`
	Qty       int      `json:"qty" validate:"required,min=1"`
	MaxQty    int      `json:"maxQty" validate:"required,min=1"`
	ImageURL  string   `json:"imageUrl,omitempty"`
}

type UpdateQtyRequest struct {
	Qty int `json:"qty" validate:"min=0"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required,min=2,max=50"`
}

type CartItemResponse struct {
	ProductID   string  `json:"productId"`
	Title       string  `json:"title"`
	UnitPrice   string  `json:"unitPrice"`
	SalePrice   *string `json:"salePrice,omitempty"`
	Quantity    int     `json:"quantity"`
	MaxQuantity int     `json:"maxQuantity"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type AppliedCouponResponse struct {
	Code           string `json:"code"`
	DiscountType   string `json:"discountType"`
	DiscountAmount string `json:"discountAmount"`
}

// TotalsResponse is the client-facing pricing breakdown, shared by the cart
// detail and checkout responses.
type TotalsResponse struct {
	Subtotal         string   `json:"subtotal"`
	ShippingCost     string   `json:"shippingCost"`
	Discount         string   `json:"discount"`
	Total            string   `json:"total"`
	ValidationErrors []string `json:"validationErrors"`
	AppliedBenefits  []string `json:"appliedBenefits"`
}

type CartDetailResponse struct {
	Items         []CartItemResponse     `json:"items"`
	AppliedCoupon *AppliedCouponResponse `json:"appliedCoupon,omitempty"`
	Totals        TotalsResponse         `json:"totals"`
	UpdatedAt     string                 `json:"updatedAt,omitempty"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}

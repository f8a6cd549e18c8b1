package coupon

import (
	"net/http"

	"go-cart-api/internal/pkg/apperror"
)

// Coupon rejections are user-input errors surfaced at the HTTP boundary.
// They are deliberately distinct from pricing validation errors.
var (
	ErrCouponNotFound = apperror.New(
		apperror.CodeNotFound,
		"Coupon code not found or inactive",
		http.StatusNotFound,
	)

	ErrCouponExpired = apperror.New(
		apperror.CodeInvalidInput,
		"Coupon code has expired",
		http.StatusUnprocessableEntity,
	)

	ErrCouponNotStarted = apperror.New(
		apperror.CodeInvalidInput,
		"Coupon code is not valid yet",
		http.StatusUnprocessableEntity,
	)

	ErrMinOrderNotMet = apperror.New(
		apperror.CodeInvalidInput,
		"Order total is below the coupon minimum",
		http.StatusUnprocessableEntity,
	)

	ErrUsageLimitReached = apperror.New(
		apperror.CodeConflict,
		"Coupon usage limit reached",
		http.StatusConflict,
	)
)

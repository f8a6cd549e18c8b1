package checkout

import (
	"net/http"

	"go-cart-api/internal/pkg/apperror"
)

var (
	ErrEmptyCart = apperror.New(
		apperror.CodeInvalidInput,
		"Cart is empty",
		http.StatusUnprocessableEntity,
	)

	ErrCheckoutBlocked = apperror.New(
		apperror.CodeInvalidInput,
		"Cart does not meet the order requirements",
		http.StatusUnprocessableEntity,
	)

	ErrPublishFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to submit checkout",
		http.StatusInternalServerError,
	)
)

package carterrors

import (
	"net/http"

	"go-cart-api/internal/pkg/apperror"
)

// MapValidationError normalizes validator failures into the shared
// invalid-input error; field detail stays out of client responses.
func MapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return ErrValidation
}

var (
	ErrDeviceIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Device ID is required",
		http.StatusBadRequest,
	)

	ErrNotInitialized = apperror.New(
		apperror.CodeConflict,
		"Cart session is not initialized",
		http.StatusConflict,
	)

	ErrIdentityRequired = apperror.New(
		apperror.CodeUnauthorized,
		"A signed-in identity is required",
		http.StatusUnauthorized,
	)

	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found in cart",
		http.StatusNotFound,
	)

ErrValidation = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid cart input",
		http.StatusBadRequest,
	)
)

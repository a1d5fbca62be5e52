package cart

import (
	"net/http"

	"go-sportstore/internal/pkg/apperror"
)

var (
	ErrInvalidProduct = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product",
		http.StatusBadRequest,
	)

	ErrInvalidQty = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be greater than zero",
		http.StatusBadRequest,
	)

	ErrCartNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cart not found",
		http.StatusNotFound,
	)

	ErrCartBusy = apperror.New(
		apperror.CodeConflict,
		"Cart is being updated, retry the request",
		http.StatusConflict,
	)

	ErrSessionRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Session required",
		http.StatusBadRequest,
	)
)

func MapValidationError(err error) error {
	return apperror.NewValidationError(err)
}

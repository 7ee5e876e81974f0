package cart

import (
	"net/http"

	"github.com/HamzaQasim7/inshacollections/internal/pkg/apperror"
)

var (
	ErrInvalidQty = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be a positive integer",
		http.StatusBadRequest,
	)

	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrColorNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Selected color is not offered for this product",
		http.StatusBadRequest,
	)

	ErrSizeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Selected size is not offered for this product",
		http.StatusBadRequest,
	)
)

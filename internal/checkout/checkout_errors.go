package checkout

import (
	"net/http"

	"github.com/HamzaQasim7/inshacollections/internal/pkg/apperror"
)

var (
	ErrEmptyCart = apperror.New(
		apperror.CodeConflict,
		"Cart is empty",
		http.StatusConflict,
	)

	ErrInvalidShipping = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown shipping method",
		http.StatusBadRequest,
	)

	ErrInvalidOrder = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order details",
		http.StatusBadRequest,
	)
)

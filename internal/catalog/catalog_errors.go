package catalog

import (
	"net/http"

	"github.com/HamzaQasim7/inshacollections/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrInvalidFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid filter criteria",
		http.StatusBadRequest,
	)
)

package wishlist

import (
	"net/http"

	"github.com/HamzaQasim7/inshacollections/internal/pkg/apperror"
)

var ErrProductNotFound = apperror.New(
	apperror.CodeNotFound,
	"Product not found",
	http.StatusNotFound,
)

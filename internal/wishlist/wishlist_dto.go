package wishlist

import "github.com/HamzaQasim7/inshacollections/internal/catalog"

type ItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type ToggleResponse struct {
	Items []catalog.Product `json:"items"`
	Added bool              `json:"added"`
}

type ContainsResponse struct {
	ProductID  string `json:"productId"`
	InWishlist bool   `json:"inWishlist"`
}

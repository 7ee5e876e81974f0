package cart

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
	Color     string `json:"color" validate:"required"`
	Size      string `json:"size" validate:"required"`
}

type ItemKeyRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Size      string `json:"size" validate:"required"`
}

type UpdateQtyRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type SetOpenRequest struct {
	IsOpen bool `json:"isOpen"`
}

type Summary struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	Subtotal   int        `json:"subtotal"`
	IsOpen     bool       `json:"isOpen"`
}

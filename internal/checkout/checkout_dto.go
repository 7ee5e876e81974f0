package checkout

import "time"

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
	ShippingSameDay  ShippingMethod = "same-day"
)

type PaymentMethod string

const (
	PaymentCOD       PaymentMethod = "cod"
	PaymentJazzCash  PaymentMethod = "jazzcash"
	PaymentEasypaisa PaymentMethod = "easypaisa"
	PaymentBank      PaymentMethod = "bank"
	PaymentCard      PaymentMethod = "card"
)

type ShippingOption struct {
	ID            ShippingMethod `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         int            `json:"price"`
	EstimatedDays string         `json:"estimatedDays"`
}

type QuoteRequest struct {
	ShippingMethod ShippingMethod `json:"shippingMethod" validate:"required,oneof=standard express same-day"`
}

type OrderSummary struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Tax      int `json:"tax"`
	Total    int `json:"total"`

	FreeShippingThreshold int `json:"freeShippingThreshold"`
	AmountToFreeShipping  int `json:"amountToFreeShipping"`
}

type Address struct {
	FullName     string `json:"fullName" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" validate:"required"`
	Province     string `json:"province" validate:"required"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

type PlaceOrderRequest struct {
	Address        Address        `json:"address" validate:"required"`
	ShippingMethod ShippingMethod `json:"shippingMethod" validate:"required,oneof=standard express same-day"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod" validate:"required,oneof=cod jazzcash easypaisa bank card"`
}

type OrderResponse struct {
	OrderNumber string       `json:"orderNumber"`
	ItemCount   int          `json:"itemCount"`
	Summary     OrderSummary `json:"summary"`
	PlacedAt    time.Time    `json:"placedAt"`
}

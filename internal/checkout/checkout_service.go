package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/HamzaQasim7/inshacollections/internal/cart"
	"github.com/HamzaQasim7/inshacollections/internal/messaging/kafka/producer"
)

// FreeShippingThreshold is the subtotal above which the cart page shows
// the free-shipping badge.
const FreeShippingThreshold = 5000

// DefaultProcessingDelay mimics payment-gateway latency; the placement
// itself is simulated and always succeeds.
const DefaultProcessingDelay = 2 * time.Second

var shippingOptions = []ShippingOption{
	{ID: ShippingStandard, Name: "Standard Delivery", Description: "Tracked courier nationwide", Price: 0, EstimatedDays: "5-7 days"},
	{ID: ShippingExpress, Name: "Express Delivery", Description: "Priority courier", Price: 500, EstimatedDays: "2-3 days"},
	{ID: ShippingSameDay, Name: "Same-Day Delivery", Description: "Karachi and Lahore only", Price: 1000, EstimatedDays: "Today before 9pm"},
}

//go:generate mockgen -source=checkout_service.go -destination=../mock/checkout/checkout_service_mock.go -package=mock
type Service interface {
	ShippingOptions(ctx context.Context) []ShippingOption
	Quote(ctx context.Context, req QuoteRequest) (OrderSummary, error)
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (OrderResponse, error)
}

type service struct {
	cartSvc         cart.Service
	publisher       producer.EventPublisher
	validate        *validator.Validate
	logger          *zap.Logger
	processingDelay time.Duration
}

type Deps struct {
	CartSvc   cart.Service
	Publisher producer.EventPublisher // optional; nil disables events

	Logger          *zap.Logger
	ProcessingDelay *time.Duration // nil means DefaultProcessingDelay
}

func NewService(deps Deps) Service {
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	delay := DefaultProcessingDelay
	if deps.ProcessingDelay != nil {
		delay = *deps.ProcessingDelay
	}
	return &service{
		cartSvc:         deps.CartSvc,
		publisher:       deps.Publisher,
		validate:        validator.New(),
		logger:          deps.Logger,
		processingDelay: delay,
	}
}

func (s *service) ShippingOptions(_ context.Context) []ShippingOption {
	return shippingOptions
}

func (s *service) Quote(ctx context.Context, req QuoteRequest) (OrderSummary, error) {
	if err := s.validate.Struct(req); err != nil {
		return OrderSummary{}, ErrInvalidShipping.Wrap(err)
	}

	option, ok := findShipping(req.ShippingMethod)
	if !ok {
		return OrderSummary{}, ErrInvalidShipping
	}

	summary := s.cartSvc.Detail(ctx)
	return buildSummary(summary.Subtotal, option.Price), nil
}

func (s *service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (OrderResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return OrderResponse{}, ErrInvalidOrder.Wrap(err)
	}

	option, ok := findShipping(req.ShippingMethod)
	if !ok {
		return OrderResponse{}, ErrInvalidShipping
	}

	cartState := s.cartSvc.Detail(ctx)
	if len(cartState.Items) == 0 {
		return OrderResponse{}, ErrEmptyCart
	}

	// simulated processing; no payment gateway is involved
	if s.processingDelay > 0 {
		select {
		case <-time.After(s.processingDelay):
		case <-ctx.Done():
			return OrderResponse{}, ctx.Err()
		}
	}

	summary := buildSummary(cartState.Subtotal, option.Price)
	order := OrderResponse{
		OrderNumber: newOrderNumber(),
		ItemCount:   cartState.TotalItems,
		Summary:     summary,
		PlacedAt:    time.Now().UTC(),
	}

	if s.publisher != nil {
		event := producer.OrderPlacedEvent{
			OrderNumber: order.OrderNumber,
			ItemCount:   order.ItemCount,
			Subtotal:    decimal.NewFromInt(int64(summary.Subtotal)).StringFixed(2),
			Shipping:    decimal.NewFromInt(int64(summary.Shipping)).StringFixed(2),
			Total:       decimal.NewFromInt(int64(summary.Total)).StringFixed(2),
			City:        req.Address.City,
			PlacedAt:    order.PlacedAt,
		}
		// best effort: a failed publish never fails the order
		if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
			s.logger.Warn("failed to publish order event", zap.Error(err))
		}
	}

	if _, err := s.cartSvc.Clear(ctx); err != nil {
		s.logger.Warn("failed to clear cart after order", zap.Error(err))
	}

	s.logger.Info("order placed",
		zap.String("orderNumber", order.OrderNumber),
		zap.Int("itemCount", order.ItemCount),
		zap.Int("total", summary.Total),
	)
	return order, nil
}

func buildSummary(subtotalAmount, shippingAmount int) OrderSummary {
	sub := decimal.NewFromInt(int64(subtotalAmount))
	ship := decimal.NewFromInt(int64(shippingAmount))
	total := sub.Add(ship)

	remaining := 0
	if subtotalAmount < FreeShippingThreshold {
		remaining = FreeShippingThreshold - subtotalAmount
	}

	return OrderSummary{
		Subtotal:              subtotalAmount,
		Shipping:              shippingAmount,
		Tax:                   0,
		Total:                 int(total.IntPart()),
		FreeShippingThreshold: FreeShippingThreshold,
		AmountToFreeShipping:  remaining,
	}
}

func findShipping(method ShippingMethod) (ShippingOption, bool) {
	for _, o := range shippingOptions {
		if o.ID == method {
			return o, true
		}
	}
	return ShippingOption{}, false
}

func newOrderNumber() string {
	id := strings.ToUpper(uuid.NewString())
	return "INS-" + strings.SplitN(id, "-", 2)[0]
}

package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/HamzaQasim7/inshacollections/internal/catalog"
	"github.com/HamzaQasim7/inshacollections/internal/shared/persist"
)

// StorageKey is the persisted-state key for the cart line items.
const StorageKey = "mala-cart"

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	AddItem(ctx context.Context, req AddItemRequest) (Summary, error)
	RemoveItem(ctx context.Context, req ItemKeyRequest) (Summary, error)
	UpdateQuantity(ctx context.Context, req UpdateQtyRequest) (Summary, error)
	Clear(ctx context.Context) (Summary, error)

	Toggle(ctx context.Context) Summary
	SetOpen(ctx context.Context, isOpen bool) Summary

	Detail(ctx context.Context) Summary
}

type service struct {
	mu    sync.Mutex
	state State

	catalogSvc catalog.Service
	store      persist.Store
	validate   *validator.Validate
	logger     *zap.Logger
}

type Deps struct {
	CatalogSvc catalog.Service
	Store      persist.Store
	Logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.CatalogSvc == nil {
		panic("catalog service cannot be nil")
	}
	if deps.Store == nil {
		panic("persist store cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	s := &service{
		state:      State{Items: []LineItem{}},
		catalogSvc: deps.CatalogSvc,
		store:      deps.Store,
		validate:   validator.New(),
		logger:     deps.Logger,
	}
	s.hydrate()
	return s
}

// hydrate loads the persisted line items. Any read or parse failure
// degrades to an empty cart; corruption is never surfaced to the caller.
func (s *service) hydrate() {
	data, err := s.store.Load(context.Background(), StorageKey)
	if err != nil {
		if !errors.Is(err, persist.ErrNotFound) {
			s.logger.Warn("failed to load persisted cart, starting empty", zap.Error(err))
		}
		return
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("failed to parse persisted cart, starting empty", zap.Error(err))
		return
	}
	s.state = reduce(s.state, action{typ: actionHydrate, items: items})
}

// persist writes the full line-item sequence. Called after every items
// mutation while the lock is held, so writes happen-after the mutation
// they record, in order.
func (s *service) persist(ctx context.Context) {
	data, err := json.Marshal(s.state.Items)
	if err != nil {
		s.logger.Error("failed to marshal cart", zap.Error(err))
		return
	}
	if err := s.store.Save(ctx, StorageKey, data); err != nil {
		s.logger.Error("failed to persist cart", zap.Error(err))
	}
}

func (s *service) summary() Summary {
	return Summary{
		Items:      s.state.Items,
		TotalItems: totalItems(s.state.Items),
		Subtotal:   subtotal(s.state.Items),
		IsOpen:     s.state.IsOpen,
	}
}

func (s *service) AddItem(ctx context.Context, req AddItemRequest) (Summary, error) {
	if err := s.validate.Struct(req); err != nil {
		return Summary{}, ErrInvalidQty.Wrap(err)
	}

	product, err := s.catalogSvc.ProductByID(ctx, req.ProductID)
	if err != nil {
		return Summary{}, ErrProductNotFound
	}

	color, ok := findColor(product, req.Color)
	if !ok {
		return Summary{}, ErrColorNotFound
	}
	if !hasSize(product, req.Size) {
		return Summary{}, ErrSizeNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state, action{typ: actionAddItem, item: LineItem{
		Product:       product,
		Quantity:      req.Quantity,
		SelectedColor: color,
		SelectedSize:  req.Size,
	}})
	s.persist(ctx)
	return s.summary(), nil
}

// RemoveItem is a no-op when no line item matches the composite key.
func (s *service) RemoveItem(ctx context.Context, req ItemKeyRequest) (Summary, error) {
	if err := s.validate.Struct(req); err != nil {
		return Summary{}, ErrProductNotFound.Wrap(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state, action{
		typ:       actionRemoveItem,
		productID: req.ProductID,
		colorName: req.Color,
		size:      req.Size,
	})
	s.persist(ctx)
	return s.summary(), nil
}

// UpdateQuantity sets the quantity exactly; below one it removes the line
// item. A non-matching key is a no-op, not an error.
func (s *service) UpdateQuantity(ctx context.Context, req UpdateQtyRequest) (Summary, error) {
	if err := s.validate.Struct(req); err != nil {
		return Summary{}, ErrInvalidQty.Wrap(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state, action{
		typ:       actionUpdateQuantity,
		productID: req.ProductID,
		colorName: req.Color,
		size:      req.Size,
		quantity:  req.Quantity,
	})
	s.persist(ctx)
	return s.summary(), nil
}

func (s *service) Clear(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state, action{typ: actionClear})
	s.persist(ctx)
	return s.summary(), nil
}

func (s *service) Toggle(_ context.Context) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	// drawer visibility is UI state only, so no persist here
	s.state = reduce(s.state, action{typ: actionToggle})
	return s.summary()
}

func (s *service) SetOpen(_ context.Context, isOpen bool) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state, action{typ: actionSetOpen, open: isOpen})
	return s.summary()
}

func (s *service) Detail(_ context.Context) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary()
}

func findColor(p catalog.Product, name string) (catalog.ProductColor, bool) {
	for _, c := range p.Colors {
		if c.Name == name {
			return c, true
		}
	}
	return catalog.ProductColor{}, false
}

func hasSize(p catalog.Product, name string) bool {
	for _, sz := range p.Sizes {
		if sz.Name == name {
			return true
		}
	}
	return false
}

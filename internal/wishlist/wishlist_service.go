package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/HamzaQasim7/inshacollections/internal/catalog"
	"github.com/HamzaQasim7/inshacollections/internal/shared/persist"
)

// StorageKey is the persisted-state key for the wishlist products.
const StorageKey = "mala-wishlist"

//go:generate mockgen -source=wishlist_service.go -destination=../mock/wishlist/wishlist_service_mock.go -package=mock
type Service interface {
	AddItem(ctx context.Context, productID string) ([]catalog.Product, error)
	RemoveItem(ctx context.Context, productID string) []catalog.Product
	Toggle(ctx context.Context, productID string) (ToggleResponse, error)
	Contains(ctx context.Context, productID string) bool
	Clear(ctx context.Context) []catalog.Product

	Items(ctx context.Context) []catalog.Product
}

type service struct {
	mu    sync.Mutex
	state State

	catalogSvc catalog.Service
	store      persist.Store
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
		state:      State{Items: []catalog.Product{}},
		catalogSvc: deps.CatalogSvc,
		store:      deps.Store,
		logger:     deps.Logger,
	}
	s.hydrate()
	return s
}

func (s *service) hydrate() {
	data, err := s.store.Load(context.Background(), StorageKey)
	if err != nil {
		if !errors.Is(err, persist.ErrNotFound) {
			s.logger.Warn("failed to load persisted wishlist, starting empty", zap.Error(err))
		}
		return
	}

	var items []catalog.Product
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("failed to parse persisted wishlist, starting empty", zap.Error(err))
		return
	}
	s.state = reduce(s.state, action{typ: actionHydrate, items: items})
}

func (s *service) persist(ctx context.Context) {
	data, err := json.Marshal(s.state.Items)
	if err != nil {
		s.logger.Error("failed to marshal wishlist", zap.Error(err))
		return
	}
	if err := s.store.Save(ctx, StorageKey, data); err != nil {
		s.logger.Error("failed to persist wishlist", zap.Error(err))
	}
}

func (s *service) AddItem(ctx context.Context, productID string) ([]catalog.Product, error) {
	product, err := s.catalogSvc.ProductByID(ctx, productID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state, action{typ: actionAddItem, product: product})
	s.persist(ctx)
	return s.state.Items, nil
}

func (s *service) RemoveItem(ctx context.Context, productID string) []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state, action{typ: actionRemoveItem, productID: productID})
	s.persist(ctx)
	return s.state.Items
}

// Toggle removes the product when present, adds it otherwise. Both the
// membership check and the transition happen under one lock, so callers
// never observe an intermediate state.
func (s *service) Toggle(ctx context.Context, productID string) (ToggleResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if containsID(s.state.Items, productID) {
		s.state = reduce(s.state, action{typ: actionRemoveItem, productID: productID})
		s.persist(ctx)
		return ToggleResponse{Items: s.state.Items, Added: false}, nil
	}

	product, err := s.catalogSvc.ProductByID(ctx, productID)
	if err != nil {
		return ToggleResponse{}, ErrProductNotFound
	}
	s.state = reduce(s.state, action{typ: actionAddItem, product: product})
	s.persist(ctx)
	return ToggleResponse{Items: s.state.Items, Added: true}, nil
}

func (s *service) Contains(_ context.Context, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return containsID(s.state.Items, productID)
}

func (s *service) Clear(ctx context.Context) []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state, action{typ: actionClear})
	s.persist(ctx)
	return s.state.Items
}

func (s *service) Items(_ context.Context) []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Items
}

package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=catalog_service.go -destination=../mock/catalog/catalog_service_mock.go -package=mock
type Service interface {
	Products(ctx context.Context) []Product
	ProductByID(ctx context.Context, id string) (Product, error)
	ProductBySlug(ctx context.Context, slug string) (Product, error)
	Collections(ctx context.Context) []Collection
	Categories(ctx context.Context) []Category

	Browse(ctx context.Context, slug string, req BrowseRequest) (BrowseResponse, error)
}

type service struct {
	products    []Product
	collections []Collection
	categories  []Category

	loadMoreDelay time.Duration
	logger        *zap.Logger
}

type Deps struct {
	Products    []Product
	Collections []Collection
	Categories  []Category

	LoadMoreDelay time.Duration
	Logger        *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Products == nil {
		deps.Products = Products
	}
	if deps.Collections == nil {
		deps.Collections = Collections
	}
	if deps.Categories == nil {
		deps.Categories = Categories
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		products:      deps.Products,
		collections:   deps.Collections,
		categories:    deps.Categories,
		loadMoreDelay: deps.LoadMoreDelay,
		logger:        deps.Logger,
	}
}

func (s *service) Products(_ context.Context) []Product {
	return s.products
}

func (s *service) ProductByID(_ context.Context, id string) (Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

func (s *service) ProductBySlug(_ context.Context, slug string) (Product, error) {
	for _, p := range s.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

func (s *service) Collections(_ context.Context) []Collection {
	return s.collections
}

func (s *service) Categories(_ context.Context) []Category {
	return s.categories
}

func (s *service) Browse(ctx context.Context, slug string, req BrowseRequest) (BrowseResponse, error) {
	filters := DefaultFilters()
	if req.Filters != nil {
		filters = *req.Filters
		if filters.SortBy == "" {
			filters.SortBy = SortFeatured
		}
	}

	filtered := FilterProducts(s.products, slug, filters)

	pager := Resume(req.Count, len(filtered), s.loadMoreDelay)
	if req.LoadMore {
		if err := pager.LoadMore(ctx); err != nil {
			return BrowseResponse{}, err
		}
	}

	s.logger.Debug("browse",
		zap.String("slug", slug),
		zap.Int("matched", len(filtered)),
		zap.Int("displayCount", pager.Count()),
	)

	return BrowseResponse{
		Items:        pager.Page(filtered),
		Total:        len(filtered),
		DisplayCount: pager.Count(),
		HasMore:      pager.HasMore(),
	}, nil
}

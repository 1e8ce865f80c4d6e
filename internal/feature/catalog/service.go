package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-api/internal/core/cache"
	"storefront-api/internal/domain"
)

// PageSize is fixed; clients only pick the page.
const PageSize = 10

var ErrNotFound = errors.New("product not found")

type Meta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	LastPage int   `json:"last_page"`
}

type ListResult struct {
	Data []domain.Product `json:"data"`
	Meta Meta             `json:"meta"`
}

type Service struct {
	products domain.ProductRepository
	cache    *cache.Cache // nil disables listing cache
	cacheTTL time.Duration
}

func New(products domain.ProductRepository, c *cache.Cache, ttl time.Duration) *Service {
	return &Service{products: products, cache: c, cacheTTL: ttl}
}

// List filters by exact category, substring-matches the description, orders by
// price when asked and returns a fixed-size page. Malformed pages clamp to 1.
func (s *Service) List(ctx context.Context, params domain.ListParams) (*ListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	params.PerPage = PageSize

	if s.cache == nil || s.cacheTTL <= 0 {
		return s.list(params)
	}
	key := fmt.Sprintf("catalog:list:%s:%s:%s:%d", params.Category, params.Search, params.SortPrice, params.Page)
	return cache.GetOrLoadJSON(s.cache, ctx, key, s.cacheTTL, func(context.Context) (*ListResult, error) {
		return s.list(params)
	})
}

func (s *Service) list(params domain.ListParams) (*ListResult, error) {
	products, total, err := s.products.Search(params)
	if err != nil {
		return nil, err
	}
	lastPage := int((total + PageSize - 1) / PageSize)
	if lastPage < 1 {
		lastPage = 1
	}
	if products == nil {
		products = []domain.Product{}
	}
	return &ListResult{
		Data: products,
		Meta: Meta{Total: total, Page: params.Page, PerPage: PageSize, LastPage: lastPage},
	}, nil
}

// Create/Update/Delete are the admin side of the catalog.

func (s *Service) Create(p *domain.Product) error { return s.products.Create(p) }

func (s *Service) Update(id uint, description string, price float64, category string) (*domain.Product, error) {
	p, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	p.Description = description
	p.Price = price
	p.Category = category
	if err := s.products.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(id uint) error {
	p, err := s.products.FindByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	return s.products.Delete(id)
}

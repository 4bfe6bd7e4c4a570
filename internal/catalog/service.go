package catalog

import (
	"context"
	"sync"
	"time"
)

const cacheTTL = 5 * time.Minute

// Fetcher is the feed boundary, implemented by Client.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Product, error)
}

// Service exposes catalog reads to the rest of the storefront.
type Service interface {
	List(ctx context.Context, category string) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
}

type service struct {
	fetcher Fetcher

	mu        sync.Mutex
	products  []Product
	fetchedAt time.Time
	ttl       time.Duration
}

func NewService(fetcher Fetcher) Service {
	return &service{
		fetcher: fetcher,
		ttl:     cacheTTL,
	}
}

// load returns the cached product list, refreshing it from the feed when
// the cache is stale. A refresh failure with a warm cache serves stale data.
func (s *service) load(ctx context.Context) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.products != nil && time.Since(s.fetchedAt) < s.ttl {
		return s.products, nil
	}

	products, err := s.fetcher.Fetch(ctx)
	if err != nil {
		if s.products != nil {
			return s.products, nil
		}
		return nil, err
	}

	s.products = products
	s.fetchedAt = time.Now()
	return s.products, nil
}

func (s *service) List(ctx context.Context, category string) ([]Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if category == "" {
		out := make([]Product, len(products))
		copy(out, products)
		return out, nil
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

package cart

import (
	"context"
	"errors"
	"strings"

	"bloomshop-be/internal/catalog"
	"bloomshop-be/internal/logger"
	"bloomshop-be/internal/pricing"

	"go.uber.org/zap"
)

// Service defines the cart mutation boundary. Every mutating operation
// persists the full cart snapshot before returning.
type Service interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Add(ctx context.Context, sessionID, productID, variant string) (*Cart, error)
	Remove(ctx context.Context, sessionID, productID, variant string) (*Cart, error)
	IncreaseQuantity(ctx context.Context, sessionID, productID, variant string) (*Cart, error)
	DecreaseQuantity(ctx context.Context, sessionID, productID, variant string) (*Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	repo       Repository
	catalogSvc catalog.Service
	pricing    *pricing.Engine
}

func NewService(repo Repository, catalogSvc catalog.Service, engine *pricing.Engine) Service {
	return &service{
		repo:       repo,
		catalogSvc: catalogSvc,
		pricing:    engine,
	}
}

func (s *service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	return s.repo.Get(ctx, sessionID)
}

// Add resolves the product from the catalog, captures the effective unit
// price and appends or increments the matching line item.
func (s *service) Add(ctx context.Context, sessionID, productID, variant string) (*Cart, error) {
	variant = strings.TrimSpace(variant)

	product, err := s.catalogSvc.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// A product with a declared option axis cannot enter the cart until
	// the caller has resolved a variant.
	if product.HasOptions() && variant == "" {
		return nil, ErrVariantRequired
	}

	unitPrice := s.pricing.UnitPrice(*product, variant)

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Add(LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		Variant:   variant,
		UnitPrice: unitPrice,
	})

	if err := s.repo.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("cart item added",
		zap.String("session_id", sessionID),
		zap.String("product_id", product.ID),
		zap.String("variant", variant),
	)

	return cart, nil
}

func (s *service) Remove(ctx context.Context, sessionID, productID, variant string) (*Cart, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) {
		c.Remove(productID, variant)
	})
}

func (s *service) IncreaseQuantity(ctx context.Context, sessionID, productID, variant string) (*Cart, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) {
		c.IncreaseQuantity(productID, variant)
	})
}

func (s *service) DecreaseQuantity(ctx context.Context, sessionID, productID, variant string) (*Cart, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) {
		c.DecreaseQuantity(productID, variant)
	})
}

// Clear empties the cart and purges the persisted copy.
func (s *service) Clear(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}

// mutate runs a read-modify-write cycle against the persisted snapshot.
func (s *service) mutate(ctx context.Context, sessionID string, fn func(*Cart)) (*Cart, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	fn(cart)

	if err := s.repo.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

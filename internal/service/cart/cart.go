package cart

import (
	"context"

	"shopfront-service/internal/domain/cart"
	xerrors "shopfront-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// Repository is the durable store behind the cart: one full serialized item
// list per user.
type Repository interface {
	Get(ctx context.Context, userID string) ([]cart.LineItem, error)
	Save(ctx context.Context, userID string, items []cart.LineItem) error
	Delete(ctx context.Context, userID string) error
}

// CartService applies the pure cart mutations and writes the full cart back
// after every change. Writes are synchronous and unconditional: carts are
// small and mutations are infrequent, so there is no batching or debounce.
type CartService struct {
	repo   Repository
	logger *zap.Logger
}

func NewCartService(repo Repository, logger *zap.Logger) *CartService {
	return &CartService{repo: repo, logger: logger}
}

// Items returns the user's line items in insertion order. Unknown users get
// an empty slice.
func (s *CartService) Items(ctx context.Context, userID string) ([]cart.LineItem, error) {
	return s.repo.Get(ctx, userID)
}

// Add increments an existing line item's quantity by one or appends a new
// line item with quantity 1.
func (s *CartService) Add(ctx context.Context, userID string, product cart.Product) ([]cart.LineItem, error) {
	if product.ID == "" {
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "product id is required")
	}
	items, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	items = cart.Add(items, product)
	if err := s.repo.Save(ctx, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove deletes the line item for productID; absent products are a no-op.
func (s *CartService) Remove(ctx context.Context, userID, productID string) ([]cart.LineItem, error) {
	items, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	items = cart.Remove(items, productID)
	if err := s.repo.Save(ctx, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetQuantity replaces the line item's quantity. Quantities below 1 are
// rejected as a no-op; removal is an explicit separate action.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID string, quantity int) ([]cart.LineItem, error) {
	items, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	items = cart.SetQuantity(items, productID, quantity)
	if err := s.repo.Save(ctx, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear removes the user's entire cart entry.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}

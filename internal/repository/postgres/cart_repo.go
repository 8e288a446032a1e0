package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"shopfront-service/internal/domain/cart"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CartRepository persists one row per user: the full serialized line-item
// list. Every mutation rewrites the whole row; carts are small and mutation
// frequency is low, so there is no partial update path.
type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

// Get returns the user's line items in insertion order. Unknown users get an
// empty slice, never an error.
func (r *CartRepository) Get(ctx context.Context, userID string) ([]cart.LineItem, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT items FROM carts WHERE user_id = $1`, userID,
	).Scan(&raw)
	if err == pgx.ErrNoRows {
		return []cart.LineItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for %s: %w", userID, err)
	}

	var items []cart.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart for %s: %w", userID, err)
	}
	return items, nil
}

// Save writes the full serialized cart for the user.
func (r *CartRepository) Save(ctx context.Context, userID string, items []cart.LineItem) error {
	if items == nil {
		items = []cart.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for %s: %w", userID, err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO carts (user_id, items, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (user_id)
		 DO UPDATE SET items = EXCLUDED.items, updated_at = now()`,
		userID, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to save cart for %s: %w", userID, err)
	}
	return nil
}

// Delete removes the user's cart entry entirely.
func (r *CartRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete cart for %s: %w", userID, err)
	}
	return nil
}

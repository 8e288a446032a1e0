package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"shopfront-service/internal/domain/order"
)

// CheckoutAuditRepository records every checkout batch for support and
// reconciliation. Writes are best-effort: callers log failures instead of
// failing the checkout.
type CheckoutAuditRepository struct {
	db *sql.DB
}

func NewCheckoutAuditRepository(db *sql.DB) *CheckoutAuditRepository {
	return &CheckoutAuditRepository{db: db}
}

// Record inserts one audit row for a checkout batch.
func (r *CheckoutAuditRepository) Record(ctx context.Context, report order.Report) error {
	failures := report.Failed
	if failures == nil {
		failures = []order.ItemFailure{}
	}
	raw, err := json.Marshal(failures)
	if err != nil {
		return fmt.Errorf("failed to marshal batch failures: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO checkout_audit (batch_id, user_id, total_items, placed, status, failures, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		report.BatchID, report.UserID, report.TotalItems(), report.Placed,
		report.Status(), raw, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record checkout batch %s: %w", report.BatchID, err)
	}
	return nil
}

// AuditEntry is one recorded checkout batch.
type AuditEntry struct {
	BatchID    string    `json:"batch_id"`
	UserID     string    `json:"user_id"`
	TotalItems int       `json:"total_items"`
	Placed     int       `json:"placed"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecentForUser lists the user's latest checkout batches, newest first.
func (r *CheckoutAuditRepository) RecentForUser(ctx context.Context, userID string, limit int) ([]AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT batch_id, user_id, total_items, placed, status, created_at
		 FROM checkout_audit
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkout batches for %s: %w", userID, err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.BatchID, &e.UserID, &e.TotalItems, &e.Placed, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan checkout batch: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

package checkout

import (
	"context"
	"sync"

	"shopfront-service/internal/domain/cart"
	"shopfront-service/internal/domain/order"
	xerrors "shopfront-service/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Carts is the slice of the cart service checkout needs.
type Carts interface {
	Items(ctx context.Context, userID string) ([]cart.LineItem, error)
	Clear(ctx context.Context, userID string) error
}

// Placer issues one upstream order-creation call.
type Placer interface {
	PlaceOrder(ctx context.Context, token, productID string, quantity int) error
}

// Auditor records checkout batches. Failures are logged, never surfaced.
type Auditor interface {
	Record(ctx context.Context, report order.Report) error
}

// Notifier announces completed batches (admin websocket hub).
type Notifier interface {
	NotifyOrderPlaced(report order.Report)
}

// CheckoutService converts a cart into one order-creation call per line item.
// All calls run concurrently; the cart is cleared only when every call
// succeeds. A call whose server write succeeded but whose response was lost
// can be retried by the user and duplicate the order. That is accepted for this
// domain, not silently compensated.
type CheckoutService struct {
	carts    Carts
	placer   Placer
	audit    Auditor
	notifier Notifier
	logger   *zap.Logger
}

func NewCheckoutService(carts Carts, placer Placer, audit Auditor, notifier Notifier, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		placer:   placer,
		audit:    audit,
		notifier: notifier,
		logger:   logger,
	}
}

// Checkout places every line item of the user's cart. The returned report
// lists per-item failures; the cart is untouched unless the whole batch
// succeeded.
func (s *CheckoutService) Checkout(ctx context.Context, userID, token string) (order.Report, error) {
	items, err := s.carts.Items(ctx, userID)
	if err != nil {
		return order.Report{}, err
	}
	if len(items) == 0 {
		return order.Report{}, xerrors.Wrap(xerrors.ErrInvalidInput, "cart is empty")
	}

	report := order.Report{
		BatchID: ulid.Make().String(),
		UserID:  userID,
	}

	// One request per line item, all in flight at once. Cart sizes are
	// single digits, so no rate limiting.
	results := make([]error, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item cart.LineItem) {
			defer wg.Done()
			results[i] = s.placer.PlaceOrder(ctx, token, item.ProductID, item.Quantity)
		}(i, item)
	}
	wg.Wait()

	for i, err := range results {
		if err != nil {
			report.Failed = append(report.Failed, order.ItemFailure{
				ProductID: items[i].ProductID,
				Quantity:  items[i].Quantity,
				Reason:    err.Error(),
			})
			continue
		}
		report.Placed++
	}

	if report.Succeeded() {
		if err := s.carts.Clear(ctx, userID); err != nil {
			// Orders are placed; a stale cart is recoverable, losing the
			// orders is not.
			s.logger.Error("failed to clear cart after checkout",
				zap.String("user_id", userID),
				zap.String("batch_id", report.BatchID),
				zap.Error(err),
			)
		}
		if s.notifier != nil {
			s.notifier.NotifyOrderPlaced(report)
		}
	} else {
		s.logger.Warn("checkout batch failed, cart left untouched",
			zap.String("user_id", userID),
			zap.String("batch_id", report.BatchID),
			zap.Int("placed", report.Placed),
			zap.Int("failed", len(report.Failed)),
		)
	}

	if s.audit != nil {
		if err := s.audit.Record(ctx, report); err != nil {
			s.logger.Error("failed to record checkout batch",
				zap.String("batch_id", report.BatchID),
				zap.Error(err),
			)
		}
	}

	return report, nil
}

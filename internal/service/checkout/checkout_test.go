package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"

	"shopfront-service/internal/domain/cart"
	"shopfront-service/internal/domain/order"
	xerrors "shopfront-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type fakeCarts struct {
	items   []cart.LineItem
	cleared bool
}

func (f *fakeCarts) Items(ctx context.Context, userID string) ([]cart.LineItem, error) {
	return f.items, nil
}

func (f *fakeCarts) Clear(ctx context.Context, userID string) error {
	f.cleared = true
	return nil
}

type fakePlacer struct {
	mu      sync.Mutex
	calls   []string
	failFor map[string]error
}

func (f *fakePlacer) PlaceOrder(ctx context.Context, token, productID string, quantity int) error {
	f.mu.Lock()
	f.calls = append(f.calls, productID)
	f.mu.Unlock()
	if err, ok := f.failFor[productID]; ok {
		return err
	}
	return nil
}

type fakeAudit struct {
	mu      sync.Mutex
	reports []order.Report
}

func (f *fakeAudit) Record(ctx context.Context, report order.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, report)
	return nil
}

type fakeNotifier struct {
	notified []order.Report
}

func (f *fakeNotifier) NotifyOrderPlaced(report order.Report) {
	f.notified = append(f.notified, report)
}

func twoItems() []cart.LineItem {
	return []cart.LineItem{
		{ProductID: "p1", Quantity: 1, Price: 10},
		{ProductID: "p2", Quantity: 3, Price: 20},
	}
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	carts := &fakeCarts{items: twoItems()}
	placer := &fakePlacer{}
	audit := &fakeAudit{}
	notifier := &fakeNotifier{}
	svc := NewCheckoutService(carts, placer, audit, notifier, zap.NewNop())

	report, err := svc.Checkout(context.Background(), "u1", "tok")
	if err != nil {
		t.Fatalf("Checkout() error: %v", err)
	}

	if !report.Succeeded() {
		t.Fatalf("expected success, got %+v", report)
	}
	if report.Placed != 2 {
		t.Errorf("expected 2 placed, got %d", report.Placed)
	}
	if !carts.cleared {
		t.Error("cart must be cleared on full success")
	}
	if len(placer.calls) != 2 {
		t.Errorf("expected one call per line item, got %d", len(placer.calls))
	}
	if len(audit.reports) != 1 || audit.reports[0].Status() != "completed" {
		t.Errorf("expected one completed audit record, got %+v", audit.reports)
	}
	if len(notifier.notified) != 1 {
		t.Errorf("expected one notification, got %d", len(notifier.notified))
	}
}

func TestCheckoutPartialFailureLeavesCartUntouched(t *testing.T) {
	carts := &fakeCarts{items: twoItems()}
	placer := &fakePlacer{failFor: map[string]error{"p2": xerrors.ErrServer}}
	audit := &fakeAudit{}
	notifier := &fakeNotifier{}
	svc := NewCheckoutService(carts, placer, audit, notifier, zap.NewNop())

	report, err := svc.Checkout(context.Background(), "u1", "tok")
	if err != nil {
		t.Fatalf("Checkout() error: %v", err)
	}

	if report.Succeeded() {
		t.Fatal("expected failed batch")
	}
	if carts.cleared {
		t.Error("a failed batch must never clear the cart")
	}
	if report.Placed != 1 {
		t.Errorf("expected 1 placed, got %d", report.Placed)
	}
	if len(report.Failed) != 1 || report.Failed[0].ProductID != "p2" {
		t.Errorf("expected p2 in the failure list, got %+v", report.Failed)
	}
	if report.Failed[0].Quantity != 3 {
		t.Errorf("failure must carry the item quantity, got %d", report.Failed[0].Quantity)
	}
	if len(notifier.notified) != 0 {
		t.Error("failed batches must not notify")
	}
	if len(audit.reports) != 1 || audit.reports[0].Status() != "failed" {
		t.Errorf("expected one failed audit record, got %+v", audit.reports)
	}
}

func TestCheckoutAllFailures(t *testing.T) {
	carts := &fakeCarts{items: twoItems()}
	placer := &fakePlacer{failFor: map[string]error{
		"p1": xerrors.ErrNetwork,
		"p2": xerrors.ErrNetwork,
	}}
	svc := NewCheckoutService(carts, placer, nil, nil, zap.NewNop())

	report, err := svc.Checkout(context.Background(), "u1", "tok")
	if err != nil {
		t.Fatalf("Checkout() error: %v", err)
	}
	if report.Placed != 0 || len(report.Failed) != 2 {
		t.Fatalf("expected 0 placed / 2 failed, got %+v", report)
	}
	if carts.cleared {
		t.Error("cart must survive a fully failed batch")
	}
}

func TestCheckoutEmptyCartIsRejected(t *testing.T) {
	svc := NewCheckoutService(&fakeCarts{}, &fakePlacer{}, nil, nil, zap.NewNop())

	_, err := svc.Checkout(context.Background(), "u1", "tok")
	if err == nil {
		t.Fatal("expected error for empty cart")
	}
	if !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

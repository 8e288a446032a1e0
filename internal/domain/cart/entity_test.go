package cart

import "testing"

func TestAddSameProductAccumulates(t *testing.T) {
	var items []LineItem
	p := Product{ID: "p1", Name: "Mug", Price: 100}

	items = Add(items, p)
	items = Add(items, p)

	if len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", items[0].Quantity)
	}
	if got := items[0].Total(); got != 200 {
		t.Errorf("expected line total 200, got %v", got)
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	var items []LineItem
	items = Add(items, Product{ID: "p1"})
	items = Add(items, Product{ID: "p2"})
	items = Add(items, Product{ID: "p1"})
	items = Add(items, Product{ID: "p3"})

	want := []string{"p1", "p2", "p3"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, id := range want {
		if items[i].ProductID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, items[i].ProductID)
		}
	}
}

func TestRemove(t *testing.T) {
	items := []LineItem{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 3},
	}

	items = Remove(items, "p1")
	if len(items) != 1 || items[0].ProductID != "p2" {
		t.Fatalf("expected only p2 to remain, got %+v", items)
	}

	// Removing an absent product is a no-op.
	items = Remove(items, "p9")
	if len(items) != 1 {
		t.Errorf("remove of absent product changed the cart: %+v", items)
	}
}

func TestSetQuantity(t *testing.T) {
	items := []LineItem{{ProductID: "p1", Quantity: 2}}

	items = SetQuantity(items, "p1", 5)
	if items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", items[0].Quantity)
	}

	items = SetQuantity(items, "p1", 0)
	if items[0].Quantity != 5 {
		t.Errorf("quantity 0 must be rejected, got %d", items[0].Quantity)
	}

	items = SetQuantity(items, "p1", -3)
	if items[0].Quantity != 5 {
		t.Errorf("negative quantity must be rejected, got %d", items[0].Quantity)
	}

	items = SetQuantity(items, "missing", 4)
	if len(items) != 1 || items[0].Quantity != 5 {
		t.Errorf("set quantity on absent product changed the cart: %+v", items)
	}
}

func TestSubtotal(t *testing.T) {
	items := []LineItem{
		{ProductID: "p1", Price: 100, Quantity: 2},
		{ProductID: "p2", Price: 49.5, Quantity: 1},
	}
	if got := Subtotal(items); got != 249.5 {
		t.Errorf("expected subtotal 249.5, got %v", got)
	}
	if got := Subtotal(nil); got != 0 {
		t.Errorf("expected empty subtotal 0, got %v", got)
	}
}

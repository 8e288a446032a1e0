package cart

// LineItem is one product plus quantity within a user's cart.
// Invariant: at most one line item per ProductID, Quantity >= 1.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	PhotoURL  string  `json:"photo_url"`
	Quantity  int     `json:"quantity"`
}

// Total returns the line total for the item.
func (li LineItem) Total() float64 {
	return li.Price * float64(li.Quantity)
}

// Product is what a page hands to Add: the snapshot of the product being put
// in the cart.
type Product struct {
	ID       string
	Name     string
	Price    float64
	PhotoURL string
}

// Add increments the quantity of an existing line item by one, or appends a
// new line item with quantity 1. Existing order is preserved; new items go to
// the end.
func Add(items []LineItem, p Product) []LineItem {
	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Quantity++
			return items
		}
	}
	return append(items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		PhotoURL:  p.PhotoURL,
		Quantity:  1,
	})
}

// Remove deletes the line item for productID. Removing an absent product is a
// no-op.
func Remove(items []LineItem, productID string) []LineItem {
	for i := range items {
		if items[i].ProductID == productID {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

// SetQuantity replaces the quantity of the matching line item. Quantities
// below 1 are rejected as a no-op: dropping to zero is an explicit Remove,
// never a side effect of this path.
func SetQuantity(items []LineItem, productID string, quantity int) []LineItem {
	if quantity < 1 {
		return items
	}
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			return items
		}
	}
	return items
}

// Subtotal sums line totals over the cart.
func Subtotal(items []LineItem) float64 {
	var total float64
	for _, li := range items {
		total += li.Total()
	}
	return total
}

package order

import "time"

// ProductRef is the product reference embedded in an order by the upstream
// API (order-time snapshot of the catalog record).
type ProductRef struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	PhotoURL string  `json:"photoUrl"`
}

// OrderUser is the buyer reference embedded in admin order listings.
type OrderUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is server-owned and read-only to this service: it is produced as a
// side effect of checkout and fetched for display.
type Order struct {
	ID        string     `json:"_id"`
	Product   ProductRef `json:"productId"`
	Quantity  int        `json:"quantity"`
	CreatedAt time.Time  `json:"createdAt"`
}

// AdminOrder is an order as seen in the admin listing, with the buyer
// attached.
type AdminOrder struct {
	Order
	User OrderUser `json:"userId"`
}

// ItemFailure describes one line item whose order-creation call failed.
type ItemFailure struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

// Report is the outcome of one checkout batch. The cart is cleared only when
// Failed is empty; any failure leaves the cart untouched so the user can
// retry without losing items.
type Report struct {
	BatchID string        `json:"batch_id"`
	UserID  string        `json:"user_id"`
	Placed  int           `json:"placed"`
	Failed  []ItemFailure `json:"failed,omitempty"`
}

// Succeeded reports whether every line item was placed.
func (r Report) Succeeded() bool {
	return len(r.Failed) == 0
}

// Status is the audit-row status string for the batch.
func (r Report) Status() string {
	if r.Succeeded() {
		return "completed"
	}
	return "failed"
}

// TotalItems is the number of line items in the batch.
func (r Report) TotalItems() int {
	return r.Placed + len(r.Failed)
}

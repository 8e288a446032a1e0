package upstream

import (
	"context"

	"shopfront-service/internal/domain/order"
)

// PlaceOrder creates one order for a single cart line item. Checkout issues
// one call per line item.
func (c *Client) PlaceOrder(ctx context.Context, token, productID string, quantity int) error {
	req := map[string]interface{}{
		"productId": productID,
		"quantity":  quantity,
	}
	return c.postJSON(ctx, "/products/productPlaced", token, req, nil)
}

// MyOrders lists the current user's orders.
func (c *Client) MyOrders(ctx context.Context, token string) ([]order.Order, error) {
	var body struct {
		Orders []order.Order `json:"orders"`
	}
	if err := c.getJSON(ctx, "/products/my-orders", token, &body); err != nil {
		return nil, err
	}
	return body.Orders, nil
}

// AllOrders lists every order with the buyer attached (admin).
func (c *Client) AllOrders(ctx context.Context, token string) ([]order.AdminOrder, error) {
	var body struct {
		Orders []order.AdminOrder `json:"orders"`
	}
	if err := c.getJSON(ctx, "/products/admin/all-orders", token, &body); err != nil {
		return nil, err
	}
	return body.Orders, nil
}

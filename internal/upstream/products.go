package upstream

import (
	"context"
	"net/http"
	"net/url"

	"shopfront-service/internal/domain/catalog"
)

// ListProducts fetches the whole catalog.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var body struct {
		Products []catalog.Product `json:"products"`
	}
	if err := c.getJSON(ctx, "/products", "", &body); err != nil {
		return nil, err
	}
	return body.Products, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (catalog.Product, error) {
	var product catalog.Product
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(id), "", &product); err != nil {
		return catalog.Product{}, err
	}
	return product, nil
}

// CreateProduct creates a catalog entry (admin).
func (c *Client) CreateProduct(ctx context.Context, token string, req catalog.CreateProductRequest) error {
	return c.postJSON(ctx, "/products", token, req, nil)
}

// UpdateProduct replaces a catalog entry (admin).
func (c *Client) UpdateProduct(ctx context.Context, token, id string, req catalog.UpdateProductRequest) error {
	return c.putJSON(ctx, "/products/"+url.PathEscape(id), token, req, nil)
}

// DeleteProduct removes a catalog entry (admin).
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), token, nil, "")
	return err
}

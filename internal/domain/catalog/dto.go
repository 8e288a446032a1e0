package catalog

// CreateProductRequest for admin product creation.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Varieties   string  `json:"varieties"`
	PhotoURL    string  `json:"photoUrl" binding:"required"`
}

// UpdateProductRequest for admin product edits.
type UpdateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Varieties   string  `json:"varieties"`
	PhotoURL    string  `json:"photoUrl"`
}

// ProductView is a product prepared for display, with the photo fallback
// already applied.
type ProductView struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Varieties   string  `json:"varieties"`
	PhotoURL    string  `json:"photoUrl"`
}

// View applies display normalization to a product.
func View(p Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Varieties:   p.Varieties,
		PhotoURL:    p.DisplayPhoto(),
	}
}

// Views maps a product list for display.
func Views(products []Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, View(p))
	}
	return views
}

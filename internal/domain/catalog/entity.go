package catalog

// PlaceholderPhoto is served when a product has no usable image.
const PlaceholderPhoto = "/images/photo1.jpg"

// Product is the upstream catalog record.
type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Varieties   string  `json:"varieties"`
	PhotoURL    string  `json:"photoUrl"`
}

// DisplayPhoto returns the product photo or the placeholder when the URL is
// missing. Malformed URLs degrade to the placeholder instead of erroring the
// page.
func (p Product) DisplayPhoto() string {
	if p.PhotoURL == "" {
		return PlaceholderPhoto
	}
	return p.PhotoURL
}

package catalog

import (
	"net/http"

	"shopfront-service/internal/domain/catalog"
	"shopfront-service/internal/middleware"
	"shopfront-service/internal/pkg/response"
	"shopfront-service/internal/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	api    *upstream.Client
	logger *zap.Logger
}

func NewProductHandler(api *upstream.Client, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{api: api, logger: logger}
}

// List returns the catalog with display normalization applied.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.api.ListProducts(c.Request.Context())
	if err != nil {
		response.FromUpstream(c, "failed to load products", err)
		return
	}
	response.Success(c, http.StatusOK, "products", gin.H{"products": catalog.Views(products)})
}

// Get returns one product.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.api.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromUpstream(c, "failed to load product", err)
		return
	}
	response.Success(c, http.StatusOK, "product", catalog.View(product))
}

// Create adds a catalog entry (admin).
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	token := middleware.GetSession(c).Token
	if err := h.api.CreateProduct(c.Request.Context(), token, req); err != nil {
		response.FromUpstream(c, "failed to create product", err)
		return
	}

	h.logger.Info("product created", zap.String("name", req.Name))
	response.Success(c, http.StatusCreated, "product created", nil)
}

// Update replaces a catalog entry (admin).
func (h *ProductHandler) Update(c *gin.Context) {
	var req catalog.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	token := middleware.GetSession(c).Token
	if err := h.api.UpdateProduct(c.Request.Context(), token, c.Param("id"), req); err != nil {
		response.FromUpstream(c, "failed to update product", err)
		return
	}
	response.Success(c, http.StatusOK, "product updated", nil)
}

// Delete removes a catalog entry (admin).
func (h *ProductHandler) Delete(c *gin.Context) {
	token := middleware.GetSession(c).Token
	if err := h.api.DeleteProduct(c.Request.Context(), token, c.Param("id")); err != nil {
		response.FromUpstream(c, "failed to delete product", err)
		return
	}
	response.Success(c, http.StatusOK, "product deleted", nil)
}

// maxUploadSize caps product images at 5MB, matching the upstream limit.
const maxUploadSize = 5 << 20

// Upload forwards a product image to the upstream upload endpoint and
// returns the public URL.
func (h *ProductHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.ValidationError(c, "missing file", err)
		return
	}
	if header.Size > maxUploadSize {
		response.ValidationError(c, "image must be smaller than 5MB", nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		response.ValidationError(c, "unreadable file", err)
		return
	}
	defer file.Close()

	token := middleware.GetSession(c).Token
	publicURL, err := h.api.UploadFile(c.Request.Context(), token, header.Filename, file)
	if err != nil {
		response.FromUpstream(c, "upload failed", err)
		return
	}

	response.Success(c, http.StatusOK, "file uploaded", gin.H{"publicUrl": publicURL})
}

package cart

import (
	"net/http"

	cartDomain "shopfront-service/internal/domain/cart"
	"shopfront-service/internal/middleware"
	"shopfront-service/internal/pkg/response"
	cartUsecase "shopfront-service/internal/service/cart"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartHandler struct {
	cartService *cartUsecase.CartService
	logger      *zap.Logger
}

func NewCartHandler(cartService *cartUsecase.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{cartService: cartService, logger: logger}
}

// AddItemRequest carries the product snapshot being added.
type AddItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price" binding:"gte=0"`
	PhotoURL  string  `json:"photo_url"`
}

// SetQuantityRequest replaces a line item's quantity.
type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// cartPayload is the common response body for cart endpoints.
func cartPayload(items []cartDomain.LineItem) gin.H {
	if items == nil {
		items = []cartDomain.LineItem{}
	}
	return gin.H{
		"items":    items,
		"subtotal": cartDomain.Subtotal(items),
	}
}

// Get returns the current user's cart.
func (h *CartHandler) Get(c *gin.Context) {
	userID := middleware.GetSession(c).UserID()
	items, err := h.cartService.Items(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load cart", err)
		return
	}
	response.Success(c, http.StatusOK, "cart", cartPayload(items))
}

// AddItem puts one unit of a product into the cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	userID := middleware.GetSession(c).UserID()
	items, err := h.cartService.Add(c.Request.Context(), userID, cartDomain.Product{
		ID:       req.ProductID,
		Name:     req.Name,
		Price:    req.Price,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to add item", err)
		return
	}
	response.Success(c, http.StatusOK, "item added", cartPayload(items))
}

// RemoveItem deletes a line item.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := middleware.GetSession(c).UserID()
	items, err := h.cartService.Remove(c.Request.Context(), userID, c.Param("productId"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to remove item", err)
		return
	}
	response.Success(c, http.StatusOK, "item removed", cartPayload(items))
}

// SetQuantity replaces a line item's quantity. Quantities below 1 leave the
// cart unchanged.
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	userID := middleware.GetSession(c).UserID()
	items, err := h.cartService.SetQuantity(c.Request.Context(), userID, c.Param("productId"), req.Quantity)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to update quantity", err)
		return
	}
	response.Success(c, http.StatusOK, "quantity updated", cartPayload(items))
}

// Clear drops the whole cart.
func (h *CartHandler) Clear(c *gin.Context) {
	userID := middleware.GetSession(c).UserID()
	if err := h.cartService.Clear(c.Request.Context(), userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to clear cart", err)
		return
	}
	response.Success(c, http.StatusOK, "cart cleared", cartPayload(nil))
}

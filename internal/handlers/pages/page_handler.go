package pages

import (
	"net/http"

	cartDomain "shopfront-service/internal/domain/cart"
	"shopfront-service/internal/domain/catalog"
	domain "shopfront-service/internal/domain/session"
	"shopfront-service/internal/middleware"
	"shopfront-service/internal/pkg/response"
	cartUsecase "shopfront-service/internal/service/cart"
	"shopfront-service/internal/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler serves the data payload for each storefront page. Every page
// route runs behind the route guard; by the time a handler executes, the
// navigation is already allowed.
type PageHandler struct {
	api         *upstream.Client
	cartService *cartUsecase.CartService
	logger      *zap.Logger
}

func NewPageHandler(api *upstream.Client, cartService *cartUsecase.CartService, logger *zap.Logger) *PageHandler {
	return &PageHandler{api: api, cartService: cartService, logger: logger}
}

func page(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["page"] = name
	data["session"] = domain.State(middleware.GetSession(c))
	response.Success(c, http.StatusOK, name, data)
}

// Home is the public product listing.
func (h *PageHandler) Home(c *gin.Context) {
	products, err := h.api.ListProducts(c.Request.Context())
	if err != nil {
		response.FromUpstream(c, "failed to load products", err)
		return
	}
	page(c, "home", gin.H{"products": catalog.Views(products)})
}

// Login, Register and AdminRegister carry no data; the guard is the point.
func (h *PageHandler) Login(c *gin.Context)         { page(c, "login", nil) }
func (h *PageHandler) Register(c *gin.Context)      { page(c, "register", nil) }
func (h *PageHandler) AdminRegister(c *gin.Context) { page(c, "admin-register", nil) }

// Cart is the user's cart with totals.
func (h *PageHandler) Cart(c *gin.Context) {
	userID := middleware.GetSession(c).UserID()
	items, err := h.cartService.Items(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load cart", err)
		return
	}
	if items == nil {
		items = []cartDomain.LineItem{}
	}
	page(c, "cart", gin.H{
		"items":    items,
		"subtotal": cartDomain.Subtotal(items),
	})
}

// UserOrders is the user's order listing.
func (h *PageHandler) UserOrders(c *gin.Context) {
	orders, err := h.api.MyOrders(c.Request.Context(), middleware.GetSession(c).Token)
	if err != nil {
		response.FromUpstream(c, "failed to load orders", err)
		return
	}
	page(c, "user-orders", gin.H{"orders": orders})
}

// ManageProducts is the admin catalog listing.
func (h *PageHandler) ManageProducts(c *gin.Context) {
	products, err := h.api.ListProducts(c.Request.Context())
	if err != nil {
		response.FromUpstream(c, "failed to load products", err)
		return
	}
	page(c, "manage-products", gin.H{"products": catalog.Views(products)})
}

// AddProduct carries no data.
func (h *PageHandler) AddProduct(c *gin.Context) { page(c, "add-product", nil) }

// EditProduct is the admin edit form, pre-filled with the product.
func (h *PageHandler) EditProduct(c *gin.Context) {
	product, err := h.api.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromUpstream(c, "failed to load product", err)
		return
	}
	page(c, "edit-product", gin.H{"product": catalog.View(product)})
}

// AdminOrders is the admin order listing.
func (h *PageHandler) AdminOrders(c *gin.Context) {
	orders, err := h.api.AllOrders(c.Request.Context(), middleware.GetSession(c).Token)
	if err != nil {
		response.FromUpstream(c, "failed to load orders", err)
		return
	}
	page(c, "admin-orders", gin.H{"orders": orders})
}

// NotFound is the catch-all.
func (h *PageHandler) NotFound(c *gin.Context) {
	response.NotFound(c, "page not found")
}

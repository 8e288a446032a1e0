// internal/app/router.go
package app

import (
	domain "shopfront-service/internal/domain/session"
	authHandler "shopfront-service/internal/handlers/auth"
	cartHandler "shopfront-service/internal/handlers/cart"
	catalogHandler "shopfront-service/internal/handlers/catalog"
	checkoutHandler "shopfront-service/internal/handlers/checkout"
	orderHandler "shopfront-service/internal/handlers/orders"
	pageHandler "shopfront-service/internal/handlers/pages"
	wsHandler "shopfront-service/internal/handlers/websocket"
	"shopfront-service/internal/middleware"
	"shopfront-service/internal/routeguard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthHandler     *authHandler.AuthHandler
	ProductHandler  *catalogHandler.ProductHandler
	CartHandler     *cartHandler.CartHandler
	CheckoutHandler *checkoutHandler.CheckoutHandler
	OrderHandler    *orderHandler.OrderHandler
	PageHandler     *pageHandler.PageHandler
	WSHandler       *wsHandler.WSHandler
	SessionMW       *middleware.SessionMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	// Every route sees a resolved session, even public ones.
	r.Use(h.SessionMW.Resolve())

	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.SessionMW.RequireRole(domain.RoleAdmin), h.WSHandler.Connect)

	// ==================== Auth ====================
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.Login)
		auth.POST("/register", h.AuthHandler.Register)
		auth.POST("/admin-register", h.AuthHandler.AdminRegister)
		auth.POST("/logout", h.AuthHandler.Logout)
		auth.GET("/me", h.AuthHandler.Me)
	}

	// ==================== Catalog ====================
	products := api.Group("/products")
	{
		products.GET("", h.ProductHandler.List)
		products.GET("/:id", h.ProductHandler.Get)

		productsAdmin := products.Group("")
		productsAdmin.Use(h.SessionMW.RequireRole(domain.RoleAdmin))
		{
			productsAdmin.POST("", h.ProductHandler.Create)
			productsAdmin.PUT("/:id", h.ProductHandler.Update)
			productsAdmin.DELETE("/:id", h.ProductHandler.Delete)
		}
	}
	api.POST("/upload", h.SessionMW.RequireRole(domain.RoleAdmin), h.ProductHandler.Upload)

	// ==================== Cart ====================
	cart := api.Group("/cart")
	cart.Use(h.SessionMW.RequireRole(domain.RoleUser))
	{
		cart.GET("", h.CartHandler.Get)
		cart.POST("/items", h.CartHandler.AddItem)
		cart.PUT("/items/:productId", h.CartHandler.SetQuantity)
		cart.DELETE("/items/:productId", h.CartHandler.RemoveItem)
		cart.DELETE("", h.CartHandler.Clear)
	}

	// ==================== Checkout ====================
	api.POST("/checkout", h.SessionMW.RequireRole(domain.RoleUser), h.CheckoutHandler.Checkout)

	// ==================== Orders ====================
	orders := api.Group("/orders")
	orders.Use(h.SessionMW.RequireRole(domain.RoleUser))
	{
		orders.GET("/my", h.OrderHandler.My)
		orders.GET("/history", h.OrderHandler.History)
		orders.GET("/all", h.SessionMW.RequireRole(domain.RoleAdmin), h.OrderHandler.All)
	}

	// ==================== Pages ====================
	// Page routes mirror the storefront navigation. Each one runs the route
	// guard; a denial answers with a redirect instead of an error body.
	r.GET("/", h.SessionMW.PageGuard(routeguard.Public), h.PageHandler.Home)
	r.GET("/LoginPage", h.SessionMW.PageGuard(routeguard.RequiresNoAuth), h.PageHandler.Login)
	r.GET("/RegisterPage", h.SessionMW.PageGuard(routeguard.RequiresNoAuth), h.PageHandler.Register)
	r.GET("/AdminRegister", h.SessionMW.PageGuard(routeguard.RequiresNoAuth), h.PageHandler.AdminRegister)
	r.GET("/CartPage", h.SessionMW.PageGuard(routeguard.RequiresUser), h.PageHandler.Cart)
	r.GET("/UserOrder", h.SessionMW.PageGuard(routeguard.RequiresUser), h.PageHandler.UserOrders)
	r.GET("/ManageProduct", h.SessionMW.PageGuard(routeguard.RequiresAdmin), h.PageHandler.ManageProducts)
	r.GET("/AddProduct", h.SessionMW.PageGuard(routeguard.RequiresAdmin), h.PageHandler.AddProduct)
	r.GET("/edit/:id", h.SessionMW.PageGuard(routeguard.RequiresAdmin), h.PageHandler.EditProduct)
	r.GET("/AdminOrder", h.SessionMW.PageGuard(routeguard.RequiresAdmin), h.PageHandler.AdminOrders)

	r.NoRoute(h.PageHandler.NotFound)
}

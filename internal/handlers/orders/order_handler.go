package orders

import (
	"net/http"

	"shopfront-service/internal/middleware"
	"shopfront-service/internal/pkg/response"
	"shopfront-service/internal/repository/postgres"
	"shopfront-service/internal/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	api    *upstream.Client
	audit  *postgres.CheckoutAuditRepository
	logger *zap.Logger
}

func NewOrderHandler(api *upstream.Client, audit *postgres.CheckoutAuditRepository, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{api: api, audit: audit, logger: logger}
}

// My lists the current user's orders.
func (h *OrderHandler) My(c *gin.Context) {
	sess := middleware.GetSession(c)
	orders, err := h.api.MyOrders(c.Request.Context(), sess.Token)
	if err != nil {
		response.FromUpstream(c, "failed to load orders", err)
		return
	}
	response.Success(c, http.StatusOK, "orders", gin.H{"orders": orders})
}

// All lists every order with buyers attached (admin).
func (h *OrderHandler) All(c *gin.Context) {
	sess := middleware.GetSession(c)
	orders, err := h.api.AllOrders(c.Request.Context(), sess.Token)
	if err != nil {
		response.FromUpstream(c, "failed to load orders", err)
		return
	}
	response.Success(c, http.StatusOK, "orders", gin.H{"orders": orders})
}

// History lists the user's recent checkout batches from the local audit log.
func (h *OrderHandler) History(c *gin.Context) {
	sess := middleware.GetSession(c)

	entries, err := h.audit.RecentForUser(c.Request.Context(), sess.UserID(), 20)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load checkout history", err)
		return
	}
	if entries == nil {
		entries = []postgres.AuditEntry{}
	}
	response.Success(c, http.StatusOK, "checkout history", gin.H{"batches": entries})
}

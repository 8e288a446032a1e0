package checkout

import (
	"net/http"

	"shopfront-service/internal/middleware"
	xerrors "shopfront-service/internal/pkg/errors"
	"shopfront-service/internal/pkg/response"
	checkoutUsecase "shopfront-service/internal/service/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	checkoutService *checkoutUsecase.CheckoutService
	logger          *zap.Logger
}

func NewCheckoutHandler(checkoutService *checkoutUsecase.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, logger: logger}
}

// Checkout places every line item of the session's cart. A partial failure
// reports the failed items and leaves the cart untouched; the frontend
// offers a manual retry, never an automatic one.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sess := middleware.GetSession(c)

	report, err := h.checkoutService.Checkout(c.Request.Context(), sess.UserID(), sess.Token)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrInvalidInput) {
			response.ValidationError(c, "cart is empty", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "checkout failed", err)
		return
	}

	if !report.Succeeded() {
		h.logger.Warn("checkout reported failures",
			zap.String("batch_id", report.BatchID),
			zap.Int("failed", len(report.Failed)),
		)
		c.Abort()
		c.JSON(http.StatusBadGateway, response.Response{
			Success:   false,
			Message:   "some orders failed to process",
			Data:      report,
			Retryable: true,
		})
		return
	}

	response.Success(c, http.StatusOK, "checkout complete", report)
}

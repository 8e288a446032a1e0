package response

import (
	"net/http"

	xerrors "shopfront-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Response defines the standard API response format.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Retryable bool        `json:"retryable,omitempty"`
}

// Success sends a successful response with a message and optional data.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends a standardized error response. The retryable flag tells the
// frontend whether to render a manual retry action; there are no automatic
// retries anywhere in this system.
func Error(c *gin.Context, code int, message string, err error) {
	c.Abort()

	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
		resp.Retryable = xerrors.Retryable(err)
	}

	c.JSON(code, resp)
}

// FromUpstream maps an upstream client error to the matching status code and
// sends it.
func FromUpstream(c *gin.Context, message string, err error) {
	switch {
	case xerrors.Is(err, xerrors.ErrAuth):
		Error(c, http.StatusUnauthorized, "please log in", err)
	case xerrors.Is(err, xerrors.ErrValidation):
		Error(c, http.StatusBadRequest, message, err)
	default:
		Error(c, http.StatusBadGateway, message, err)
	}
}

// ValidationError sends a 400 Bad Request response for invalid input.
func ValidationError(c *gin.Context, message string, err error) {
	Error(c, http.StatusBadRequest, message, err)
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

// Forbidden sends a 403 Forbidden response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message, nil)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

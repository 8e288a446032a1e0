package auth

import (
	"net/http"

	domain "shopfront-service/internal/domain/session"
	"shopfront-service/internal/middleware"
	"shopfront-service/internal/pkg/response"
	sess "shopfront-service/internal/pkg/session"
	authUsecase "shopfront-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *authUsecase.AuthService
	sessionMW   *middleware.SessionMiddleware
	rateLimiter *sess.RateLimiter
	logger      *zap.Logger
}

func NewAuthHandler(authService *authUsecase.AuthService, sessionMW *middleware.SessionMiddleware, rateLimiter *sess.RateLimiter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessionMW:   sessionMW,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// Login exchanges credentials for a session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	req.IPAddress = c.ClientIP()

	allowed, remaining, err := h.rateLimiter.CheckLoginAttempt(c.Request.Context(), req.IPAddress, req.Email)
	if err != nil {
		h.logger.Warn("rate limiter unavailable, allowing attempt", zap.Error(err))
	} else if !allowed {
		response.Error(c, http.StatusTooManyRequests, "too many login attempts, try again later", nil)
		return
	}

	cookie, profile, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.logger.Info("login failed",
			zap.String("email", req.Email),
			zap.String("ip", req.IPAddress),
			zap.Int64("attempts_remaining", remaining),
			zap.Error(err),
		)
		response.FromUpstream(c, "login failed", err)
		return
	}

	if err := h.rateLimiter.ResetLoginAttempts(c.Request.Context(), req.IPAddress, req.Email); err != nil {
		h.logger.Warn("failed to reset login attempts", zap.Error(err))
	}

	h.sessionMW.SetCookie(c, cookie, h.authService.CookieTTLSeconds())
	h.logger.Info("user logged in",
		zap.String("user_id", profile.ID),
		zap.String("role", profile.Role),
	)

	response.Success(c, http.StatusOK, "login successful", domain.LoginResponse{User: profile})
}

// Register creates a regular user account upstream.
func (h *AuthHandler) Register(c *gin.Context) {
	h.register(c, "")
}

// AdminRegister creates an admin account upstream.
func (h *AuthHandler) AdminRegister(c *gin.Context) {
	h.register(c, "admin")
}

func (h *AuthHandler) register(c *gin.Context, role string) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	req.Role = role

	if err := h.authService.Register(c.Request.Context(), req); err != nil {
		h.logger.Info("registration failed", zap.String("email", req.Email), zap.Error(err))
		response.FromUpstream(c, "registration failed", err)
		return
	}

	response.Success(c, http.StatusCreated, "registration successful", nil)
}

// Logout clears the session. Takes effect locally whether or not the
// upstream is reachable.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.Logout(c.Request.Context(), h.sessionMW.RawCookie(c))
	h.sessionMW.ClearCookie(c)
	response.Success(c, http.StatusOK, "logout successful", nil)
}

// Me reports the resolved session state.
func (h *AuthHandler) Me(c *gin.Context) {
	s := middleware.GetSession(c)
	response.Success(c, http.StatusOK, "session state", domain.State(s))
}

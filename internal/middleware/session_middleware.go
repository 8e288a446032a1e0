package middleware

import (
	"net/http"

	domain "shopfront-service/internal/domain/session"
	"shopfront-service/internal/pkg/response"
	"shopfront-service/internal/routeguard"
	authUsecase "shopfront-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// SessionMiddleware resolves the session cookie into a Session for every
// request and enforces route capabilities on top of it.
type SessionMiddleware struct {
	authService *authUsecase.AuthService
	cookieName  string
	secure      bool
}

func NewSessionMiddleware(authService *authUsecase.AuthService, cookieName string, secure bool) *SessionMiddleware {
	return &SessionMiddleware{
		authService: authService,
		cookieName:  cookieName,
		secure:      secure,
	}
}

// Resolve validates the session cookie and stores the resolved session in
// the request context. A failed validation clears the cookie (fail-closed)
// and continues as logged-out; individual routes decide whether that is
// acceptable.
func (m *SessionMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil {
			cookie = ""
		}

		sess, purge := m.authService.Resolve(c.Request.Context(), cookie)
		if purge {
			c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RequireRole guards API routes: 401 for guests, 403 for authenticated
// sessions below the minimum role. MUST run after Resolve.
func (m *SessionMiddleware) RequireRole(minimum domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if !sess.LoggedIn() {
			response.Unauthorized(c, "please log in")
			return
		}
		if !sess.Role().AtLeast(minimum) {
			response.Forbidden(c, "insufficient permissions")
			return
		}
		c.Next()
	}
}

// PageGuard applies the route guard to a page route, translating a denial
// into an HTTP redirect. MUST run after Resolve.
func (m *SessionMiddleware) PageGuard(req routeguard.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := routeguard.Decide(GetSession(c), req)
		if !decision.Allow {
			c.Redirect(http.StatusSeeOther, decision.RedirectTo)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ClearCookie drops the session cookie (logout).
func (m *SessionMiddleware) ClearCookie(c *gin.Context) {
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}

// SetCookie installs a freshly minted session cookie.
func (m *SessionMiddleware) SetCookie(c *gin.Context, value string, maxAge int) {
	c.SetCookie(m.cookieName, value, maxAge, "/", "", m.secure, true)
}

// RawCookie returns the raw session cookie, or "" when absent.
func (m *SessionMiddleware) RawCookie(c *gin.Context) string {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return cookie
}

// GetSession returns the resolved session for the request. Requests that
// never went through Resolve are logged out.
func GetSession(c *gin.Context) domain.Session {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return domain.LoggedOut
	}
	sess, ok := v.(domain.Session)
	if !ok {
		return domain.LoggedOut
	}
	return sess
}

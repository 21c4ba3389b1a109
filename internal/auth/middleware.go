package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware provides session-cookie authentication middleware
type Middleware struct {
	service *Service
	config  *Config
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service, config *Config) *Middleware {
	return &Middleware{service: service, config: config}
}

// RequireSession validates the session cookie and sets user context. A
// missing or invalid session yields 401 with the login URL the SPA should
// redirect to.
func (m *Middleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(m.config.CookieName)
		if err != nil {
			m.unauthorized(c, "session cookie missing")
			return
		}

		claims, err := m.service.ValidateSession(cookie)
		if err != nil {
			m.unauthorized(c, "session is invalid or expired")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("session_claims", claims)

		c.Next()
	}
}

// OptionalSession sets user context when a valid session cookie is present
// but never rejects the request
func (m *Middleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(m.config.CookieName)
		if err != nil {
			c.Next()
			return
		}

		claims, err := m.service.ValidateSession(cookie)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("session_claims", claims)

		c.Next()
	}
}

func (m *Middleware) unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":     message,
		"login_url": m.config.IdentityLogin,
	})
	c.Abort()
}

// ClaimsFromContext extracts validated session claims from the gin context
func ClaimsFromContext(c *gin.Context) (*SessionClaims, bool) {
	value, exists := c.Get("session_claims")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*SessionClaims)
	return claims, ok
}

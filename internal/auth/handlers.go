package auth

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"peakform-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handlers exposes the login, callback, logout, and me endpoints
type Handlers struct {
	service  *Service
	config   *Config
	userRepo repository.UserRepositoryInterface
}

// NewHandlers creates new auth handlers
func NewHandlers(service *Service, config *Config, userRepo repository.UserRepositoryInterface) *Handlers {
	return &Handlers{
		service:  service,
		config:   config,
		userRepo: userRepo,
	}
}

// Login handles GET /auth/login
// @Summary Start a login flow
// @Description Redirects the browser to the identity provider's login page
// @Tags auth
// @Param redirect query string false "Path to return to after login"
// @Success 302
// @Router /auth/login [get]
func (h *Handlers) Login(c *gin.Context) {
	target, err := url.Parse(h.config.IdentityLogin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login URL misconfigured"})
		return
	}

	query := target.Query()
	query.Set("callback", h.callbackURL(c))
	if redirect := c.Query("redirect"); redirect != "" {
		query.Set("state", redirect)
	}
	target.RawQuery = query.Encode()

	c.Redirect(http.StatusFound, target.String())
}

// Callback handles GET /auth/callback
// @Summary Complete a login flow
// @Description Validates the identity provider assertion and issues the session cookie
// @Tags auth
// @Param assertion query string true "Signed identity assertion"
// @Param state query string false "Path to return to"
// @Success 302
// @Failure 401 {object} map[string]interface{} "Invalid assertion"
// @Router /auth/callback [get]
func (h *Handlers) Callback(c *gin.Context) {
	assertion := c.Query("assertion")
	if assertion == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "assertion is required", "login_url": h.config.IdentityLogin})
		return
	}

	email, err := h.service.ValidateAssertion(assertion)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid assertion", "login_url": h.config.IdentityLogin})
		return
	}

	user, err := h.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no account for this identity", "login_url": h.config.IdentityLogin})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up user"})
		return
	}

	token, err := h.service.GenerateSession(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	maxAge := int(h.config.TTL().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.CookieName, token, maxAge, "/", "", h.config.CookieSecure, true)

	redirect := c.Query("state")
	if redirect == "" || redirect[0] != '/' {
		redirect = "/"
	}
	c.Redirect(http.StatusFound, redirect)
}

// Logout handles GET /auth/logout
// @Summary End the session
// @Description Clears the session cookie and redirects to the identity provider's logout page
// @Tags auth
// @Success 302
// @Router /auth/logout [get]
func (h *Handlers) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.CookieName, "", -1, "/", "", h.config.CookieSecure, true)

	if h.config.IdentityLogout != "" {
		c.Redirect(http.StatusFound, h.config.IdentityLogout)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me handles GET /auth/me
// @Summary Current session
// @Description Returns the claims and user record behind the active session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Current session"
// @Failure 401 {object} map[string]interface{} "No active session"
// @Router /auth/me [get]
func (h *Handlers) Me(c *gin.Context) {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session", "login_url": h.config.IdentityLogin})
		return
	}

	user, err := h.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists", "login_url": h.config.IdentityLogin})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"claims": claims, "user": user})
}

func (h *Handlers) callbackURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/api/v1/auth/callback", scheme, c.Request.Host)
}

package auth_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"peakform-backend/internal/auth"
	"peakform-backend/internal/database/models"
	apperrors "peakform-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AuthTestSuite defines the test suite for session handling
type AuthTestSuite struct {
	suite.Suite
	config  *auth.Config
	service *auth.Service
}

// SetupTest sets up the test suite
func (suite *AuthTestSuite) SetupTest() {
	suite.T().Setenv("SESSION_SECRET", "test-secret")
	suite.T().Setenv("IDENTITY_LOGIN_URL", "http://identity.test/login")

	config, err := auth.LoadConfig(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.Require().NoError(err)
	suite.config = config
	suite.service = auth.NewService(config)
}

func (suite *AuthTestSuite) testUser() *models.User {
	user := &models.User{
		Email:     "ada@peakform.test",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      models.UserRoleSupervisor,
	}
	user.ID = uuid.New()
	return user
}

// TestLoadConfigDefaults tests defaults with environment overrides only
func (suite *AuthTestSuite) TestLoadConfigDefaults() {
	suite.Equal("peakform_session", suite.config.CookieName)
	suite.Equal("http://identity.test/login", suite.config.IdentityLogin)
	suite.Equal(12*time.Hour, suite.config.TTL())
}

// TestLoadConfigFromFile tests reading the YAML file
func (suite *AuthTestSuite) TestLoadConfigFromFile() {
	path := filepath.Join(suite.T().TempDir(), "auth.yaml")
	content := []byte("session_secret: file-secret\ncookie_name: custom_session\nsession_ttl: 30m\nidentity_login_url: http://idp.test/login\n")
	suite.Require().NoError(os.WriteFile(path, content, 0o600))
	suite.T().Setenv("SESSION_SECRET", "")
	suite.T().Setenv("IDENTITY_LOGIN_URL", "")

	config, err := auth.LoadConfig(path)
	suite.Require().NoError(err)
	suite.Equal("file-secret", config.SessionSecret)
	suite.Equal("custom_session", config.CookieName)
	suite.Equal(30*time.Minute, config.TTL())
}

// TestLoadConfigMissingSecret tests that the secret is required
func (suite *AuthTestSuite) TestLoadConfigMissingSecret() {
	suite.T().Setenv("SESSION_SECRET", "")

	_, err := auth.LoadConfig(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.Error(err)
	suite.Contains(err.Error(), "session_secret")
}

// TestSessionRoundTrip tests generating and validating a session token
func (suite *AuthTestSuite) TestSessionRoundTrip() {
	user := suite.testUser()

	token, err := suite.service.GenerateSession(user)
	suite.Require().NoError(err)
	suite.NotEmpty(token)

	claims, err := suite.service.ValidateSession(token)
	suite.Require().NoError(err)
	suite.Equal(user.ID, claims.UserID)
	suite.Equal(user.Email, claims.Email)
	suite.Equal(models.UserRoleSupervisor, claims.Role)
}

// TestValidateSessionGarbage tests rejection of malformed tokens
func (suite *AuthTestSuite) TestValidateSessionGarbage() {
	_, err := suite.service.ValidateSession("not.a.token")
	suite.ErrorIs(err, apperrors.ErrSessionInvalid)
}

// TestValidateSessionWrongSecret tests rejection of foreign signatures
func (suite *AuthTestSuite) TestValidateSessionWrongSecret() {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "attacker",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("other-secret"))
	suite.Require().NoError(err)

	_, err = suite.service.ValidateSession(signed)
	suite.ErrorIs(err, apperrors.ErrSessionInvalid)
}

// TestValidateSessionExpired tests rejection of expired tokens
func (suite *AuthTestSuite) TestValidateSessionExpired() {
	past := time.Now().Add(-2 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.SessionClaims{
		UserID: uuid.New(),
		Email:  "ada@peakform.test",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(past),
		},
	})
	signed, err := token.SignedString([]byte("test-secret"))
	suite.Require().NoError(err)

	_, err = suite.service.ValidateSession(signed)
	suite.ErrorIs(err, apperrors.ErrSessionInvalid)
}

// TestValidateAssertion tests that the assertion subject is the email
func (suite *AuthTestSuite) TestValidateAssertion() {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "ada@peakform.test",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(5 * time.Minute)),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	suite.Require().NoError(err)

	email, err := suite.service.ValidateAssertion(signed)
	suite.Require().NoError(err)
	suite.Equal("ada@peakform.test", email)
}

// TestValidateAssertionEmptySubject tests rejection of subject-less assertions
func (suite *AuthTestSuite) TestValidateAssertionEmptySubject() {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(5 * time.Minute)),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	suite.Require().NoError(err)

	_, err = suite.service.ValidateAssertion(signed)
	suite.ErrorIs(err, apperrors.ErrSessionInvalid)
}

// TestRequireSessionMissingCookie tests the 401 with the login redirect
func (suite *AuthTestSuite) TestRequireSessionMissingCookie() {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	middleware := auth.NewMiddleware(suite.service, suite.config)
	router.GET("/protected", middleware.RequireSession(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(recorder, req)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
	suite.Contains(recorder.Body.String(), "http://identity.test/login")
}

// TestRequireSessionValidCookie tests that a valid session passes through
func (suite *AuthTestSuite) TestRequireSessionValidCookie() {
	user := suite.testUser()
	token, err := suite.service.GenerateSession(user)
	suite.Require().NoError(err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	middleware := auth.NewMiddleware(suite.service, suite.config)
	router.GET("/protected", middleware.RequireSession(), func(c *gin.Context) {
		claims, ok := auth.ClaimsFromContext(c)
		suite.True(ok)
		suite.Equal(user.ID, claims.UserID)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: suite.config.CookieName, Value: token})
	router.ServeHTTP(recorder, req)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), user.Email)
}

// TestOptionalSessionInvalidCookie tests that optional auth never rejects
func (suite *AuthTestSuite) TestOptionalSessionInvalidCookie() {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	middleware := auth.NewMiddleware(suite.service, suite.config)
	router.GET("/open", middleware.OptionalSession(), func(c *gin.Context) {
		_, ok := auth.ClaimsFromContext(c)
		suite.False(ok)
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(&http.Cookie{Name: suite.config.CookieName, Value: "garbage"})
	router.ServeHTTP(recorder, req)

	suite.Equal(http.StatusOK, recorder.Code)
}

// TestAuthTestSuite runs the test suite
func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

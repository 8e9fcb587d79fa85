package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"folio_backend/internal/auth"
	"folio_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokenService("test-secret-0123456789abcdef", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens), func(c *gin.Context) {
		principal := c.MustGet(string(contextkeys.PrincipalContextKey)).(*auth.Principal)
		c.JSON(http.StatusOK, gin.H{"user_id": principal.UserID, "email": principal.Email})
	})
	return r, tokens
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()
	r, _ := newAuthTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	t.Parallel()
	r, _ := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_AttachesPrincipal(t *testing.T) {
	t.Parallel()
	r, tokens := newAuthTestRouter(t)

	token, err := tokens.Generate(auth.Principal{UserID: "user-42", Email: "owner@example.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-42")
	assert.Contains(t, rec.Body.String(), "owner@example.com")
}

package handlers

import (
	"net/http"

	"folio_backend/internal/auth"
	"folio_backend/internal/logger"
	"folio_backend/internal/services"
	"folio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const stateCookieName = "oauth_state"

// AuthHandler runs the GitHub authorization-code flow. The state value is a
// random string held in a short-lived HttpOnly cookie; the callback rejects
// any request whose state parameter does not match it.
type AuthHandler struct {
	BaseHandler
	github *auth.GitHubProvider
	auths  services.AuthService
}

func NewAuthHandler(base BaseHandler, github *auth.GitHubProvider, auths services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, github: github, auths: auths}
}

// Login godoc
// @Summary      Start the GitHub sign-in flow
// @Tags         auth
// @Success      307
// @Router       /auth/github/login [get]
func (h *AuthHandler) Login(c *gin.Context) {
	state := uuid.NewString()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.github.AuthURL(state))
}

// Callback godoc
// @Summary      Complete the GitHub sign-in flow
// @Description  Verifies the state, exchanges the code, provisions the account on first sign-in and returns the session token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  apperrors.ErrorResponse
// @Router       /auth/github/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	stateCookie, err := c.Cookie(stateCookieName)
	if err != nil || stateCookie == "" || c.Query("state") != stateCookie {
		logger.CtxWarn(c.Request.Context(), "oauth callback state mismatch")
		h.HandleServiceError(c, apperrors.ErrInvalidOAuthState)
		return
	}

	// The state is single-use.
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Missing OAuth code"))
		return
	}

	identity, err := h.github.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "oauth code exchange failed", err)
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Authentication failed"))
		return
	}

	token, err := h.auths.SignIn(c.Request.Context(), h.GetDB(c), identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"access_token": token, "token_type": "Bearer"})
}

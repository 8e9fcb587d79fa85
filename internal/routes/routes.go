package routes

import (
	"net/http"

	"folio_backend/internal/auth"
	"folio_backend/internal/handlers"
	"folio_backend/internal/middleware"
	"folio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes mounts the whole API under /api/v1. Unknown paths and
// unsupported verbs get the shared error envelope instead of gin's defaults.
func SetupRoutes(r *gin.Engine, h *handlers.AppHandlers, tokens *auth.TokenService) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(apperrors.NotFoundRoute)
	r.NoMethod(apperrors.MethodNotAllowed)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Public surface: sign-in, profile reads, contact relay, local files.
	api.GET("/auth/github/login", h.Auth.Login)
	api.GET("/auth/github/callback", h.Auth.Callback)
	api.GET("/profiles/:username", h.Profile.GetPublicProfile)
	api.POST("/profiles/:username/contact", h.Contact.Relay)
	api.GET("/files/*key", h.Files.Serve)

	// Owner surface: everything below requires a verified principal.
	owner := api.Group("", middleware.AuthMiddleware(tokens))

	me := owner.Group("/users/me")
	me.GET("", h.User.GetMe)
	me.PUT("", h.User.UpdateMe)
	me.PUT("/section-names", h.User.UpdateSectionNames)
	me.GET("/contact", h.User.GetContactSettings)
	me.PUT("/contact", h.User.UpdateContactSettings)
	me.PUT("/social-links", h.User.ReplaceSocialLinks)

	h.Skills.RegisterRoutes(owner)
	h.Experience.RegisterRoutes(owner)
	h.Education.RegisterRoutes(owner)
	h.Portfolio.RegisterRoutes(owner)
}

package handlers

import (
	"folio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the public, unauthenticated profile read.
type ProfileHandler struct {
	BaseHandler
	profiles services.ProfileService
}

func NewProfileHandler(base BaseHandler, profiles services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profiles: profiles}
}

// GetPublicProfile godoc
// @Summary      Public profile by username
// @Description  Aggregated profile document: user fields, section names and all visible collections
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Profile username"
// @Success      200       {object}  dto.PublicProfileResponse
// @Failure      404       {object}  apperrors.ErrorResponse
// @Router       /profiles/{username} [get]
func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	profile, err := h.profiles.GetPublicProfile(c.Request.Context(), h.GetDB(c), c.Param("username"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, profile)
}

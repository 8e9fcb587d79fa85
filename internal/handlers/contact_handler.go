package handlers

import (
	"folio_backend/internal/dto"
	"folio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ContactHandler accepts visitor messages on the public profile page.
type ContactHandler struct {
	BaseHandler
	contact services.ContactService
}

func NewContactHandler(base BaseHandler, contact services.ContactService) *ContactHandler {
	return &ContactHandler{BaseHandler: base, contact: contact}
}

// Relay godoc
// @Summary      Send a message to a profile owner
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        username  path  string                    true  "Profile username"
// @Param        request   body  dto.ContactMessageRequest  true  "Visitor message"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  apperrors.ErrorResponse
// @Failure      502  {object}  apperrors.ErrorResponse
// @Router       /profiles/{username}/contact [post]
func (h *ContactHandler) Relay(c *gin.Context) {
	var req dto.ContactMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.contact.Relay(c.Request.Context(), h.GetDB(c), c.Param("username"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"status": "sent"})
}

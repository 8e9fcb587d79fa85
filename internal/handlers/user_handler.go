package handlers

import (
	"folio_backend/internal/dto"
	"folio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserHandler covers the authenticated /users/me surface.
type UserHandler struct {
	BaseHandler
	users services.UserService
}

func NewUserHandler(base BaseHandler, users services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, users: users}
}

// GetMe godoc
// @Summary      Current account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.users.GetMe(c.Request.Context(), h.GetDB(c), h.Principal(c).UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, user)
}

// UpdateMe godoc
// @Summary      Update profile fields, optionally with a new avatar
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        display_name  formData  string  false  "Display name"
// @Param        username      formData  string  false  "Public username"
// @Param        image         formData  file    false  "Avatar image"
// @Success      200  {object}  models.User
// @Failure      409  {object}  apperrors.ErrorResponse  "Username already taken"
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	// The avatar part is optional.
	avatar, err := c.FormFile("image")
	if err != nil {
		avatar = nil
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), h.GetDB(c), h.Principal(c), &req, avatar)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, user)
}

// UpdateSectionNames godoc
// @Summary      Rename the profile sections
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.SectionNamesRequest  true  "Section labels"
// @Success      200      {object}  models.User
// @Router       /users/me/section-names [put]
func (h *UserHandler) UpdateSectionNames(c *gin.Context) {
	var req dto.SectionNamesRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.users.UpdateSectionNames(c.Request.Context(), h.GetDB(c), h.Principal(c).UserID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, user)
}

// GetContactSettings godoc
// @Summary      Contact-form provider token
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ContactSettingsResponse
// @Router       /users/me/contact [get]
func (h *UserHandler) GetContactSettings(c *gin.Context) {
	settings, err := h.users.GetContactSettings(c.Request.Context(), h.GetDB(c), h.Principal(c).UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, settings)
}

// UpdateContactSettings godoc
// @Summary      Set the contact-form provider token
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.ContactSettingsRequest  true  "Provider token"
// @Success      200      {object}  dto.ContactSettingsResponse
// @Router       /users/me/contact [put]
func (h *UserHandler) UpdateContactSettings(c *gin.Context) {
	var req dto.ContactSettingsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	settings, err := h.users.UpdateContactSettings(c.Request.Context(), h.GetDB(c), h.Principal(c).UserID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, settings)
}

// ReplaceSocialLinks godoc
// @Summary      Replace all social links
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.ReplaceSocialLinksRequest  true  "Full link set"
// @Success      200      {array}   models.SocialLink
// @Router       /users/me/social-links [put]
func (h *UserHandler) ReplaceSocialLinks(c *gin.Context) {
	var req dto.ReplaceSocialLinksRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	links, err := h.users.ReplaceSocialLinks(c.Request.Context(), h.GetDB(c), h.Principal(c).UserID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, links)
}

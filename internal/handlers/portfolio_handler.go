package handlers

import (
	"net/http"

	"folio_backend/internal/dto"
	"folio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PortfolioHandler manages project cards. Create and update are multipart
// because the card image rides along with the form fields.
type PortfolioHandler struct {
	BaseHandler
	portfolio services.PortfolioService
}

func NewPortfolioHandler(base BaseHandler, portfolio services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{BaseHandler: base, portfolio: portfolio}
}

func (h *PortfolioHandler) RegisterRoutes(rg *gin.RouterGroup) {
	col := rg.Group("/portfolio-items")
	col.GET("", h.List)
	col.POST("", h.Create)
	col.PUT("/:id", h.Update)
	col.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary      Own portfolio items
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.PortfolioItem
// @Router       /portfolio-items [get]
func (h *PortfolioHandler) List(c *gin.Context) {
	items, err := h.portfolio.List(c.Request.Context(), h.GetDB(c), h.Principal(c).UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, items)
}

// Create godoc
// @Summary      Create a portfolio item with its image
// @Tags         portfolio
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name   formData  string  true   "Project name"
// @Param        image  formData  file    true   "Card image"
// @Success      201    {object}  models.PortfolioItem
// @Failure      413    {object}  apperrors.ErrorResponse
// @Failure      415    {object}  apperrors.ErrorResponse
// @Router       /portfolio-items [post]
func (h *PortfolioHandler) Create(c *gin.Context) {
	var req dto.CreatePortfolioItemRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		file = nil // Put reports the missing file
	}

	item, err := h.portfolio.Create(c.Request.Context(), h.GetDB(c), h.Principal(c), &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, item)
}

// Update godoc
// @Summary      Update a portfolio item, optionally replacing its image
// @Tags         portfolio
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "Item id"
// @Param        image  formData  file    false  "Replacement image"
// @Success      200    {object}  models.PortfolioItem
// @Failure      404    {object}  apperrors.ErrorResponse
// @Router       /portfolio-items/{id} [put]
func (h *PortfolioHandler) Update(c *gin.Context) {
	var req dto.UpdatePortfolioItemRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		file = nil
	}

	item, err := h.portfolio.Update(c.Request.Context(), h.GetDB(c), h.Principal(c), c.Param("id"), &req, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, item)
}

// Delete godoc
// @Summary      Delete a portfolio item and its stored image
// @Tags         portfolio
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      204
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /portfolio-items/{id} [delete]
func (h *PortfolioHandler) Delete(c *gin.Context) {
	if err := h.portfolio.Delete(c.Request.Context(), h.GetDB(c), h.Principal(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

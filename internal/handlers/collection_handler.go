package handlers

import (
	"net/http"

	"folio_backend/internal/models"
	"folio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CollectionHandler exposes one user-owned collection over HTTP. The three
// list collections (skills, experience, education) are instantiations of this
// type with their own DTOs; the item constructor and update-map builder are
// the only per-entity code.
type CollectionHandler[T models.OwnedItem, C any, U any] struct {
	BaseHandler
	svc      *services.CollectionService[T]
	resource string

	// newItem builds the model row from a validated create request.
	newItem func(ownerID string, req *C) *T
	// updateFields maps a validated update request to the columns it sets.
	// Nil disables the update route (skills are create/delete only).
	updateFields func(req *U) map[string]interface{}
}

func NewCollectionHandler[T models.OwnedItem, C any, U any](
	base BaseHandler,
	svc *services.CollectionService[T],
	resource string,
	newItem func(ownerID string, req *C) *T,
	updateFields func(req *U) map[string]interface{},
) *CollectionHandler[T, C, U] {
	return &CollectionHandler[T, C, U]{
		BaseHandler:  base,
		svc:          svc,
		resource:     resource,
		newItem:      newItem,
		updateFields: updateFields,
	}
}

// RegisterRoutes mounts the collection under its resource segment. All routes
// sit inside the authenticated group.
func (h *CollectionHandler[T, C, U]) RegisterRoutes(rg *gin.RouterGroup) {
	col := rg.Group("/" + h.resource)
	col.GET("", h.List)
	col.POST("", h.Create)
	if h.updateFields != nil {
		col.PUT("/:id", h.Update)
	}
	col.DELETE("/:id", h.Delete)
}

func (h *CollectionHandler[T, C, U]) List(c *gin.Context) {
	principal := h.Principal(c)

	items, err := h.svc.List(c.Request.Context(), h.GetDB(c), principal.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, items)
}

func (h *CollectionHandler[T, C, U]) Create(c *gin.Context) {
	principal := h.Principal(c)

	var req C
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.svc.Create(c.Request.Context(), h.GetDB(c), principal.UserID, h.newItem(principal.UserID, &req))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, item)
}

func (h *CollectionHandler[T, C, U]) Update(c *gin.Context) {
	principal := h.Principal(c)

	var req U
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	item, err := h.svc.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), principal.UserID, h.updateFields(&req))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, item)
}

func (h *CollectionHandler[T, C, U]) Delete(c *gin.Context) {
	principal := h.Principal(c)

	if err := h.svc.Delete(c.Request.Context(), h.GetDB(c), c.Param("id"), principal.UserID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"io"
	"net/http"
	"strings"

	"folio_backend/internal/storage"
	"folio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FilesHandler streams stored objects over HTTP. It exists for the local
// storage backend in development; S3 and R2 serve their public URLs directly.
type FilesHandler struct {
	BaseHandler
	store storage.Storage
}

func NewFilesHandler(base BaseHandler, store storage.Storage) *FilesHandler {
	return &FilesHandler{BaseHandler: base, store: store}
}

// Serve godoc
// @Summary      Stream a stored object
// @Tags         files
// @Param        key  path  string  true  "Object key"
// @Success      200
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /files/{key} [get]
func (h *FilesHandler) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" || strings.Contains(key, "..") {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid object key"))
		return
	}

	reader, err := h.store.Get(c.Request.Context(), key)
	if err != nil {
		h.HandleServiceError(c, apperrors.ErrNotFound(err))
		return
	}
	defer reader.Close()

	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

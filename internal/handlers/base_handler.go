package handlers

import (
	"net/http"

	"folio_backend/internal/auth"
	"folio_backend/internal/validator"
	"folio_backend/pkg/apperrors"
	"folio_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler holds what every handler needs: the shared validator and the
// binding/error helpers. Concrete handlers embed it.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// GetDB pulls the request-scoped gorm handle placed by DBMiddleware. Tests
// inject a transaction through the same key.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, ok := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
	if !ok {
		panic("database handle missing from request context")
	}
	return db
}

// Principal returns the identity attached by AuthMiddleware. Calling it on a
// route outside the auth group is a programming error.
func (h *BaseHandler) Principal(c *gin.Context) *auth.Principal {
	p, ok := c.MustGet(string(contextkeys.PrincipalContextKey)).(*auth.Principal)
	if !ok {
		panic("principal missing from request context")
	}
	return p
}

// BindAndValidateJSON decodes the JSON body into req and runs the shared
// validation rules. On failure it writes the error envelope and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validateBound(c, req)
}

// BindAndValidateForm decodes multipart/urlencoded form fields into req.
func (h *BaseHandler) BindAndValidateForm(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form data"))
		return false
	}
	return h.validateBound(c, req)
}

func (h *BaseHandler) validateBound(c *gin.Context, req interface{}) bool {
	if err := h.validator.Validate(req); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
			return false
		}
		apperrors.HandleError(c, apperrors.InternalError(err))
		return false
	}
	return true
}

// HandleServiceError forwards a service error to the shared envelope writer.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// OK writes a 200 with the given payload.
func (h *BaseHandler) OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a 201 with the given payload.
func (h *BaseHandler) Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

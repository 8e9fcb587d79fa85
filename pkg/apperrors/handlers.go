package apperrors

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the only error envelope clients ever see.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler writes an AppError to the response. With Debug disabled,
// non-AppError causes are collapsed into an opaque 500.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		if !h.Debug {
			appErr.Message = "Internal server error"
			appErr.Details = nil
		}
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error())
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleError is the shortcut handlers use on every error path.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

// AsAppError unwraps err into *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// NotFoundRoute and MethodNotAllowed are installed on the router itself so
// unknown paths and unsupported verbs share the error envelope.

func NotFoundRoute(c *gin.Context) {
	HandleError(c, New(CodeNotFound, "routing", "Route not found", http.StatusNotFound))
}

func MethodNotAllowed(c *gin.Context) {
	HandleError(c, New(CodeMethodNotAllowed, "routing", "Method not allowed", http.StatusMethodNotAllowed))
}

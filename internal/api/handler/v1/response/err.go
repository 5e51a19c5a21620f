package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	ErrorText  string `json:"error,omitempty"`
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.Int("status", e.StatusCode),
			zap.String("error", e.ErrorText),
			zap.String("path", ctx.FullPath()),
		)
	}

	ctx.AbortWithStatusJSON(e.StatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    "invalid request",
		ErrorText:  err.Error(),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    "unauthorized access",
		ErrorText:  err.Error(),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Message:    "permission denied",
		ErrorText:  err.Error(),
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("%v not found by %v (%v)", resource, key, value),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "internal server error",
		ErrorText:  err.Error(),
	}
}

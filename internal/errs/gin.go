package errs

import (
	"github.com/btmxh/thumbboard/internal/stores"
	"github.com/gin-gonic/gin"
)

type GinErrorHandler struct {
	context *gin.Context
}

func NewGinErrorHandler(c *gin.Context, title string) *GinErrorHandler {
	stores.SetErrorTitle(c, title)
	return &GinErrorHandler{context: c}
}

func (e *GinErrorHandler) RenderError(err error) {
	e.context.Error(err).SetType(gin.ErrorTypeRender)
}

func (e *GinErrorHandler) PublicError(statusCode int, err error) {
	e.context.Status(statusCode)
	e.context.Error(err).SetType(gin.ErrorTypePublic)
}

func (e *GinErrorHandler) PrivateError(err error) {
	e.context.Error(err).SetType(gin.ErrorTypePrivate)
}

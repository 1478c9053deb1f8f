package middlewares

import (
	"net/http"
	"strconv"

	"github.com/btmxh/thumbboard/internal/errs"
	"github.com/btmxh/thumbboard/internal/services"
	"github.com/btmxh/thumbboard/internal/stores"
	"github.com/gin-gonic/gin"
)

// ThumbnailIdMiddleware parses the :tid route parameter. Thumbnail ids are
// integers, so anything else cannot name a thumbnail and is a 404.
func ThumbnailIdMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		handler := errs.NewGinErrorHandler(ctx, "Thumbnail lookup error")

		id, err := strconv.ParseInt(ctx.Param("tid"), 10, 64)
		if err != nil {
			handler.PrivateError(err)
			handler.PublicError(http.StatusNotFound, services.ErrThumbnailNotFound)
			ctx.Abort()
			return
		}

		stores.SetThumbnailId(ctx, id)
		ctx.Next()
	}
}

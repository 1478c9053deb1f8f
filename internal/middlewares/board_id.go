package middlewares

import (
	"errors"
	"net/http"

	"github.com/btmxh/thumbboard/internal/db"
	"github.com/btmxh/thumbboard/internal/errs"
	"github.com/btmxh/thumbboard/internal/services"
	"github.com/btmxh/thumbboard/internal/stores"
	"github.com/gin-gonic/gin"
)

var InvalidBoardIdError = errors.New("Invalid board ID.")

// BoardIdMiddleware stores the :id route parameter and aborts with 404 when
// no such board exists.
func BoardIdMiddleware(database *db.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		handler := errs.NewGinErrorHandler(ctx, "Board lookup error")
		id := ctx.Param("id")

		if id == "" {
			handler.PublicError(http.StatusNotFound, InvalidBoardIdError)
			ctx.Abort()
			return
		}

		stores.SetBoardId(ctx, id)

		tx := database.BeginTx(ctx.Request.Context(), handler)
		if tx == nil {
			ctx.Abort()
			return
		}
		defer tx.Rollback()

		hasRow, hasErr := services.CheckBoardExists(tx, id)
		if hasErr {
			ctx.Abort()
			return
		}

		if !hasRow {
			handler.PublicError(http.StatusNotFound, services.ErrBoardNotFound)
			ctx.Abort()
			return
		}

		if tx.Commit() {
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

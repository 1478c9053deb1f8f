package routes

import (
	"errors"
	"net/http"

	"github.com/btmxh/thumbboard/internal/errs"
	"github.com/btmxh/thumbboard/internal/middlewares"
	"github.com/btmxh/thumbboard/internal/services"
	"github.com/btmxh/thumbboard/internal/stores"
	"github.com/gin-gonic/gin"
)

var ErrInvalidBody = errors.New("Invalid request body")

type boardNameRequest struct {
	Name *string `json:"name"`
}

func BoardsRouter(g *gin.RouterGroup, r *Router) {
	g.GET("", r.listBoards)
	g.POST("", r.createBoard)

	idGroup := g.Group("/:id")
	idGroup.Use(middlewares.BoardIdMiddleware(r.db))
	idGroup.GET("", r.getBoard)
	idGroup.PUT("", r.renameBoard)
	idGroup.DELETE("", r.deleteBoard)

	ThumbnailsRouter(idGroup.Group("/thumbnails"), r)
}

func (r *Router) listBoards(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Board list error")

	tx := r.db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	boards, hasErr := services.ListBoards(tx)
	if hasErr || tx.Commit() {
		return
	}

	c.JSON(http.StatusOK, boards)
}

func (r *Router) createBoard(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Board create error")

	var body boardNameRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		handler.PrivateError(err)
		handler.PublicError(http.StatusBadRequest, ErrInvalidBody)
		return
	}

	name := services.DefaultBoardName
	if body.Name != nil {
		name = *body.Name
	}

	tx := r.db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	board, hasErr := services.CreateBoard(tx, name)
	if hasErr || tx.Commit() {
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": board.Id, "name": board.Name})
}

func (r *Router) getBoard(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Board fetch error")
	id := stores.GetBoardId(c)

	tx := r.db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	board, hasErr := services.GetBoard(tx, id)
	if hasErr || tx.Commit() {
		return
	}

	c.JSON(http.StatusOK, board)
}

func (r *Router) renameBoard(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Board rename error")
	id := stores.GetBoardId(c)

	var body boardNameRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		handler.PrivateError(err)
		handler.PublicError(http.StatusBadRequest, ErrInvalidBody)
		return
	}

	name := ""
	if body.Name != nil {
		name = *body.Name
	}

	tx := r.db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	board, hasErr := services.RenameBoard(tx, id, name)
	if hasErr || tx.Commit() {
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": board.Id, "name": board.Name})
}

func (r *Router) deleteBoard(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Board delete error")
	id := stores.GetBoardId(c)

	tx := r.db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	if services.DeleteBoard(tx, id) || tx.Commit() {
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Board and its thumbnails deleted successfully"})
}

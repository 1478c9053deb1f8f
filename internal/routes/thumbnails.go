package routes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/btmxh/thumbboard/internal/errs"
	"github.com/btmxh/thumbboard/internal/media"
	"github.com/btmxh/thumbboard/internal/middlewares"
	"github.com/btmxh/thumbboard/internal/services"
	"github.com/btmxh/thumbboard/internal/stores"
	"github.com/gin-gonic/gin"
)

var ErrInvalidVideoURL = errors.New("Invalid YouTube URL or video ID not found")
var ErrThumbnailUnavailable = errors.New("Unable to retrieve any thumbnail for video")

type addThumbnailRequest struct {
	VideoURL string  `json:"video_url"`
	Title    *string `json:"title"`
}

func ThumbnailsRouter(g *gin.RouterGroup, r *Router) {
	g.POST("", r.addThumbnail)
	g.DELETE("/:tid", middlewares.ThumbnailIdMiddleware(), r.deleteThumbnail)
}

// addThumbnail resolves the video before touching the database, so no
// transaction stays open while the thumbnail host is probed.
func (r *Router) addThumbnail(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Thumbnail add error")
	boardId := stores.GetBoardId(c)

	var body addThumbnailRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		handler.PrivateError(err)
		handler.PublicError(http.StatusBadRequest, ErrInvalidBody)
		return
	}

	videoId, ok := media.ExtractVideoId(body.VideoURL)
	if !ok {
		handler.PublicError(http.StatusBadRequest, ErrInvalidVideoURL)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), r.requestTimeout)
	defer cancel()

	thumbnailURL, ok := r.resolver.Resolve(ctx, videoId)
	if !ok {
		handler.PublicError(http.StatusBadRequest, ErrThumbnailUnavailable)
		return
	}

	var title string
	if body.Title != nil {
		title = *body.Title
	} else {
		title = media.LookupTitle(ctx, r.titles, videoId)
	}

	tx := r.db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	thumbnail, hasErr := services.AddThumbnail(tx, boardId, body.VideoURL, thumbnailURL, title)
	if hasErr || tx.Commit() {
		return
	}

	slog.Info("Thumbnail added", "board", boardId, "video", videoId, "thumbnail", thumbnailURL)
	c.JSON(http.StatusCreated, thumbnail)
}

func (r *Router) deleteThumbnail(c *gin.Context) {
	handler := errs.NewGinErrorHandler(c, "Thumbnail delete error")
	boardId := stores.GetBoardId(c)
	id := stores.GetThumbnailId(c)

	tx := r.db.BeginTx(c.Request.Context(), handler)
	if tx == nil {
		return
	}
	defer tx.Rollback()

	if services.DeleteThumbnail(tx, boardId, id) || tx.Commit() {
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thumbnail deleted successfully"})
}

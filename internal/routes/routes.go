package routes

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/btmxh/thumbboard/internal/db"
	"github.com/btmxh/thumbboard/internal/media"
	"github.com/btmxh/thumbboard/internal/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

const DefaultRequestTimeout = 45 * time.Second

type ThumbnailResolver interface {
	Resolve(ctx context.Context, id media.VideoId) (string, bool)
}

type Options struct {
	DB       *db.DB
	Resolver ThumbnailResolver
	// nil means every thumbnail without a title is "Untitled Video"
	Titles media.TitleSource
	// directory holding index.html and the frontend assets, optional
	StaticDir string
	// gzip level, 0 disables compression
	GzipMode int
	// upper bound for adding a thumbnail, probes included
	RequestTimeout time.Duration
}

type Router struct {
	db             *db.DB
	resolver       ThumbnailResolver
	titles         media.TitleSource
	requestTimeout time.Duration
}

func CreateMainRouter(opts Options) http.Handler {
	r := &Router{
		db:             opts.DB,
		resolver:       opts.Resolver,
		titles:         opts.Titles,
		requestTimeout: opts.RequestTimeout,
	}
	if r.requestTimeout <= 0 {
		r.requestTimeout = DefaultRequestTimeout
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.LogMiddleware())
	router.Use(cors.Default())

	if opts.GzipMode != 0 {
		router.Use(gzip.Gzip(opts.GzipMode))
	}

	router.Use(middlewares.ErrorMiddleware())

	BoardsRouter(router.Group("/api/boards"), r)
	StaticRouter(router, opts.StaticDir)

	return router
}

// StaticRouter serves the single page frontend: index.html for / and for
// shared board links, and the assets under /static.
func StaticRouter(router *gin.Engine, dir string) {
	if dir == "" {
		return
	}

	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		slog.Info("Static frontend not found, serving API only", "dir", dir, "err", err)
		return
	}

	router.StaticFile("/", index)
	router.GET("/board/:id", func(c *gin.Context) {
		c.File(index)
	})
	router.Static("/static", dir)
}

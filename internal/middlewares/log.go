package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

func LogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		slog.Info("Handling request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		slog.Info("Finish handling request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "time", elapsed)
	}
}

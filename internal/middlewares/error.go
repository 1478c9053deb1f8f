package middlewares

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/btmxh/thumbboard/internal/stores"
	"github.com/gin-gonic/gin"
)

const internalServerError = "Internal server error"

// ErrorMiddleware renders the errors collected on the context as
// {"error": "..."}. Only public errors reach the client.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		title := stores.GetErrorTitle(c)
		slog.Warn("Error handling request", "title", title, "path", c.Request.URL.Path, "errors", c.Errors.String())

		if c.Writer.Written() {
			return
		}

		var descriptions []string
		for _, err := range c.Errors {
			if err.Type == gin.ErrorTypePublic {
				descriptions = append(descriptions, err.Error())
			}
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}

		description := internalServerError
		if len(descriptions) > 0 {
			description = strings.Join(descriptions, "\n")
		}

		c.JSON(status, gin.H{"error": description})
	}
}

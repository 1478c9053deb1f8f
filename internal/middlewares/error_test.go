package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/btmxh/thumbboard/internal/errs"
	"github.com/btmxh/thumbboard/internal/stores"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(path, target string, handlers ...gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware())
	router.GET(path, handlers...)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestErrorMiddlewarePublicError(t *testing.T) {
	w := serve("/", "/", func(c *gin.Context) {
		handler := errs.NewGinErrorHandler(c, "Test error")
		handler.PrivateError(errors.New("secret detail"))
		handler.PublicError(http.StatusBadRequest, errors.New("Bad input"))
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Bad input"}`, w.Body.String())
}

func TestErrorMiddlewarePrivateOnly(t *testing.T) {
	w := serve("/", "/", func(c *gin.Context) {
		errs.NewGinErrorHandler(c, "Test error").PrivateError(errors.New("secret detail"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestErrorMiddlewareKeepsWrittenResponse(t *testing.T) {
	w := serve("/", "/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		errs.NewGinErrorHandler(c, "Test error").RenderError(errors.New("late"))
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestThumbnailIdMiddleware(t *testing.T) {
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": stores.GetThumbnailId(c)})
	}
	w := serve("/:tid", "/42", ThumbnailIdMiddleware(), handler)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42}`, w.Body.String())

	w = serve("/:tid", "/forty-two", ThumbnailIdMiddleware(), handler)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

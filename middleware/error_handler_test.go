package middleware

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/donelist/todo-backend/errors"
	"github.com/donelist/todo-backend/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
	m.Run()
}

func errorRouter(handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.Use(ErrorHandler())
	r.GET("/", handler)
	return r
}

func perform(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestErrorHandler(t *testing.T) {
	t.Run("app error renders its mapped status with no body", func(t *testing.T) {
		r := errorRouter(func(c *gin.Context) {
			_ = c.Error(errors.NotFound("todo", "abc"))
		})

		w := perform(r)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("binding error renders 400", func(t *testing.T) {
		r := errorRouter(func(c *gin.Context) {
			_ = c.Error(stderrors.New("unexpected EOF")).SetType(gin.ErrorTypeBind)
		})

		w := perform(r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("unknown error renders 500", func(t *testing.T) {
		r := errorRouter(func(c *gin.Context) {
			_ = c.Error(stderrors.New("something broke"))
		})

		w := perform(r)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("last attached error wins", func(t *testing.T) {
		r := errorRouter(func(c *gin.Context) {
			_ = c.Error(stderrors.New("first"))
			_ = c.Error(errors.Unauthorized("second"))
		})

		w := perform(r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("no error leaves the handler response alone", func(t *testing.T) {
		r := errorRouter(func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		w := perform(r)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

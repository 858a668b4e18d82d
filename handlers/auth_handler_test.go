package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	r := setupRouter(new(MockTodoStore))

	t.Run("well-formed login is not implemented", func(t *testing.T) {
		w := performJSON(r, http.MethodPost, "/login", gin.H{
			"username": "alice",
			"password": "hunter2",
		})

		assert.Equal(t, http.StatusNotImplemented, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("form encoded login is accepted", func(t *testing.T) {
		form := url.Values{"username": {"alice"}, "password": {"hunter2"}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})

	t.Run("missing credentials return 400", func(t *testing.T) {
		w := performJSON(r, http.MethodPost, "/login", gin.H{"username": "alice"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unsupported media type returns 415", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("<login/>"))
		req.Header.Set("Content-Type", "application/xml")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})
}

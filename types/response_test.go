package types

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendResponse(t *testing.T, r Response) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	r.Send(c)
	return w
}

func TestResponseSend(t *testing.T) {
	t.Run("acknowledged is an empty 200", func(t *testing.T) {
		w := sendResponse(t, Acknowledged())
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("created is an empty 201", func(t *testing.T) {
		w := sendResponse(t, Created())
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("no content is an empty 204", func(t *testing.T) {
		w := sendResponse(t, NoContent())
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("payload is a 200 JSON array", func(t *testing.T) {
		w := sendResponse(t, Payload([]Todo{{ID: "a", Name: "buy milk", Status: StatusNotStarted}}))
		assert.Equal(t, http.StatusOK, w.Code)

		var got []Todo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "buy milk", got[0].Name)
	})

	t.Run("nil payload renders as an empty array", func(t *testing.T) {
		w := sendResponse(t, Payload(nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

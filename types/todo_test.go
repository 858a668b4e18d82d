package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValid(t *testing.T) {
	valid := []Status{StatusCompleted, StatusInProgress, StatusNotStarted, StatusDeleted}
	for _, s := range valid {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	invalid := []Status{"", "Done", "completed", "NOT_STARTED"}
	for _, s := range invalid {
		assert.False(t, s.Valid(), "expected %q to be invalid", s)
	}
}

func TestTodoJSONShape(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("nil description serializes as null", func(t *testing.T) {
		todo := Todo{
			ID:        "4d2c7e7a-0000-4000-8000-000000000001",
			Name:      "buy milk",
			Status:    StatusNotStarted,
			CreatedAt: now,
			UpdatedAt: now,
		}

		data, err := json.Marshal(todo)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"description":null`)
		assert.Contains(t, string(data), `"createdAt":"2026-03-14T09:30:00Z"`)
		assert.Contains(t, string(data), `"updatedAt":"2026-03-14T09:30:00Z"`)
	})

	t.Run("round trip preserves fields", func(t *testing.T) {
		desc := "two liters"
		todo := Todo{
			ID:          "4d2c7e7a-0000-4000-8000-000000000002",
			Name:        "buy milk",
			Description: &desc,
			Status:      StatusInProgress,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		data, err := json.Marshal(todo)
		require.NoError(t, err)

		var got Todo
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, todo, got)
	})
}

func TestTodoUpdateAbsentFieldsStayNil(t *testing.T) {
	var update TodoUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"status":"Completed"}`), &update))

	assert.Nil(t, update.Name)
	assert.Nil(t, update.Description)
	require.NotNil(t, update.Status)
	assert.Equal(t, StatusCompleted, *update.Status)
}

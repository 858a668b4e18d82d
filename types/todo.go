package types

import (
	"time"
)

// Status is the lifecycle state of a todo item.
type Status string

const (
	StatusCompleted  Status = "Completed"
	StatusInProgress Status = "InProgress"
	StatusNotStarted Status = "NotStarted"
	// StatusDeleted marks a record as recoverable instead of removing it.
	// No code path sets it today; the DELETE endpoint performs a hard delete.
	StatusDeleted Status = "Deleted"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusNotStarted, StatusDeleted:
		return true
	}
	return false
}

func (s Status) Ptr() *Status {
	return &s
}

// Todo is a persisted task record. The ID is minted by the server at creation
// time, never by the database; both timestamps are set by the database.
type Todo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TodoCreate is the client-supplied creation payload.
type TodoCreate struct {
	Name        string  `json:"name" form:"name" binding:"required"`
	Description *string `json:"description" form:"description"`
	Status      *Status `json:"status" form:"status"`
}

// TodoUpdate is the client-supplied partial-update payload. A nil field means
// "leave unchanged", not "set to empty".
type TodoUpdate struct {
	Name        *string `json:"name,omitempty" form:"name"`
	Description *string `json:"description,omitempty" form:"description"`
	Status      *Status `json:"status,omitempty" form:"status"`
}

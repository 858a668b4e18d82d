// Package store defines the persistence gateway contract and its error
// taxonomy. Handlers depend on these interfaces, never on a concrete database.
package store

import (
	"context"

	"github.com/donelist/todo-backend/types"
)

// TodoStore is the persistence gateway for todo records.
//
// Update and Delete report success via affected-row count rather than raising
// a not-found error themselves: zero rows means "no such id" and the caller
// decides the client-visible semantics. This keeps every mutating operation's
// contract uniform.
type TodoStore interface {
	// Create mints a new identifier server-side, inserts the row, and returns
	// the full inserted record including store-assigned timestamps.
	Create(ctx context.Context, create *types.TodoCreate) (*types.Todo, error)

	// List returns every row currently in the table. Order is unspecified.
	List(ctx context.Context) ([]types.Todo, error)

	// GetByID returns the single row matching id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*types.Todo, error)

	// Update applies a partial update where each unset field keeps its current
	// stored value, and returns the number of rows matched.
	Update(ctx context.Context, id string, update *types.TodoUpdate) (int64, error)

	// Delete permanently removes the row matching id and returns the number of
	// rows matched.
	Delete(ctx context.Context, id string) (int64, error)
}

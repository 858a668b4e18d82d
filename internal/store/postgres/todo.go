// Package postgres implements the todo persistence gateway against
// PostgreSQL using pgx.
package postgres

import (
	"context"
	"errors"

	"github.com/donelist/todo-backend/internal/store"
	"github.com/donelist/todo-backend/logger"
	"github.com/donelist/todo-backend/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of pgxpool.Pool the store needs. Tests substitute a mock
// pool; production injects the process-wide pool owned by main.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Ensure TodoStore implements the gateway contract.
var _ store.TodoStore = (*TodoStore)(nil)

// TodoStore implements store.TodoStore using PostgreSQL.
type TodoStore struct {
	db DB
}

// NewTodoStore creates a new TodoStore instance.
func NewTodoStore(db DB) *TodoStore {
	return &TodoStore{db: db}
}

// Create mints a new UUID server-side and inserts the row. The database
// assigns both timestamps; the full inserted row is returned.
func (s *TodoStore) Create(ctx context.Context, create *types.TodoCreate) (*types.Todo, error) {
	log := logger.GetLogger()

	status := types.StatusNotStarted
	if create.Status != nil {
		status = *create.Status
	}

	query := `
		INSERT INTO todos (id, name, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, status, created_at, updated_at`

	todo := &types.Todo{}
	row := s.db.QueryRow(ctx, query,
		uuid.New().String(),
		create.Name,
		create.Description,
		status,
	)

	err := row.Scan(
		&todo.ID,
		&todo.Name,
		&todo.Description,
		&todo.Status,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		return nil, &store.WriteError{Op: "create todo", Err: err}
	}

	log.Infow("Created todo", "todoID", todo.ID)
	return todo, nil
}

// List retrieves every todo currently in the table. No ordering is defined.
func (s *TodoStore) List(ctx context.Context) ([]types.Todo, error) {
	query := `
		SELECT id, name, description, status, created_at, updated_at
		FROM todos`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, &store.ReadError{Op: "list todos", Err: err}
	}
	defer rows.Close()

	var todos []types.Todo
	for rows.Next() {
		var todo types.Todo
		err := rows.Scan(
			&todo.ID,
			&todo.Name,
			&todo.Description,
			&todo.Status,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		)
		if err != nil {
			return nil, &store.ReadError{Op: "scan todo", Err: err}
		}
		todos = append(todos, todo)
	}

	if err = rows.Err(); err != nil {
		return nil, &store.ReadError{Op: "list todos", Err: err}
	}

	return todos, nil
}

// GetByID retrieves a todo by its ID.
func (s *TodoStore) GetByID(ctx context.Context, id string) (*types.Todo, error) {
	query := `
		SELECT id, name, description, status, created_at, updated_at
		FROM todos
		WHERE id = $1`

	todo := &types.Todo{}
	row := s.db.QueryRow(ctx, query, id)

	err := row.Scan(
		&todo.ID,
		&todo.Name,
		&todo.Description,
		&todo.Status,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, &store.ReadError{Op: "get todo", Err: err}
	}

	return todo, nil
}

// Update applies a partial update. Each nil field keeps its current stored
// value via COALESCE. Returns the number of rows matched; zero means no such
// id and the caller decides what that means.
func (s *TodoStore) Update(ctx context.Context, id string, update *types.TodoUpdate) (int64, error) {
	query := `
		UPDATE todos
		SET name = COALESCE($1, name),
			description = COALESCE($2, description),
			status = COALESCE($3, status),
			updated_at = NOW()
		WHERE id = $4`

	tag, err := s.db.Exec(ctx, query,
		update.Name,
		update.Description,
		update.Status,
		id,
	)
	if err != nil {
		return 0, &store.WriteError{Op: "update todo", Err: err}
	}

	return tag.RowsAffected(), nil
}

// Delete permanently removes the row matching id. Returns the number of rows
// matched.
func (s *TodoStore) Delete(ctx context.Context, id string) (int64, error) {
	log := logger.GetLogger()

	tag, err := s.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return 0, &store.WriteError{Op: "delete todo", Err: err}
	}

	if tag.RowsAffected() > 0 {
		log.Infow("Deleted todo", "todoID", id)
	}
	return tag.RowsAffected(), nil
}

package handlers

import (
	"github.com/donelist/todo-backend/errors"
	"github.com/donelist/todo-backend/internal/store"
	"github.com/donelist/todo-backend/logger"
	"github.com/donelist/todo-backend/types"
	"github.com/gin-gonic/gin"
)

// TodoHandler exposes the todo resource over HTTP. Each handler binds input,
// makes exactly one gateway call, and produces either an API outcome or an
// AppError; the error-handling middleware renders the latter.
type TodoHandler struct {
	store store.TodoStore
}

func NewTodoHandler(s store.TodoStore) *TodoHandler {
	return &TodoHandler{store: s}
}

// CreateTodoHandler handles POST /todo. The server mints the identifier;
// status defaults to NotStarted when omitted.
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	log := logger.GetLogger()

	var req types.TodoCreate
	if appErr := bindJSONOrForm(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		_ = c.Error(errors.BadRequest("Invalid status", string(*req.Status)))
		return
	}

	todo, err := h.store.Create(c.Request.Context(), &req)
	if err != nil {
		// Constraint violations and other write failures are not
		// distinguished; both surface as a bad request.
		log.Errorw("Failed to create todo", "error", err)
		_ = c.Error(errors.Wrap(err, errors.ValidationError, "Failed to create todo"))
		return
	}

	types.Created().Send(c)
}

// ListTodosHandler handles GET /todo. A store read failure maps to not found
// rather than an internal error; see DESIGN.md for the rationale behind
// keeping that mapping.
func (h *TodoHandler) ListTodosHandler(c *gin.Context) {
	log := logger.GetLogger()

	todos, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Errorw("Failed to list todos", "error", err)
		_ = c.Error(errors.Wrap(err, errors.NotFoundError, "Failed to list todos"))
		return
	}

	types.Payload(todos).Send(c)
}

// GetTodoHandler handles GET /todo/:id. The body is a one-element JSON array,
// the same shape the list endpoint produces.
func (h *TodoHandler) GetTodoHandler(c *gin.Context) {
	id, appErr := todoID(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	todo, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		// Any fetch failure surfaces as not found.
		_ = c.Error(errors.NotFound("todo", id))
		return
	}

	types.Payload([]types.Todo{*todo}).Send(c)
}

// UpdateTodoHandler handles PUT /todo/:id. Absent fields are left unchanged.
// Zero rows affected means no such id and maps to not found, never success.
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	log := logger.GetLogger()

	id, appErr := todoID(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	var req types.TodoUpdate
	if appErr := bindJSONOrForm(c, &req); appErr != nil {
		_ = c.Error(appErr)
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		_ = c.Error(errors.BadRequest("Invalid status", string(*req.Status)))
		return
	}

	affected, err := h.store.Update(c.Request.Context(), id, &req)
	if err != nil {
		log.Errorw("Failed to update todo", "todoID", id, "error", err)
		_ = c.Error(errors.Wrap(err, errors.ServerError, "Failed to update todo"))
		return
	}
	if affected == 0 {
		_ = c.Error(errors.NotFound("todo", id))
		return
	}

	types.Acknowledged().Send(c)
}

// DeleteTodoHandler handles DELETE /todo/:id. The delete is a hard delete;
// the Deleted status value is never involved.
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	log := logger.GetLogger()

	id, appErr := todoID(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	affected, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		log.Errorw("Failed to delete todo", "todoID", id, "error", err)
		_ = c.Error(errors.Wrap(err, errors.ValidationError, "Failed to delete todo"))
		return
	}
	if affected == 0 {
		_ = c.Error(errors.NotFound("todo", id))
		return
	}

	types.NoContent().Send(c)
}

package router

import (
	"github.com/donelist/todo-backend/config"
	"github.com/donelist/todo-backend/handlers"
	"github.com/donelist/todo-backend/middleware"
	"github.com/gin-gonic/gin"
)

// Dependencies holds everything required for setting up routes.
type Dependencies struct {
	Config      *config.Config
	TodoHandler *handlers.TodoHandler
	AuthHandler *handlers.AuthHandler
	EchoHandler *handlers.EchoHandler
}

// SetupRouter configures and returns the main Gin engine with all routes
// defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.ErrorHandler())

	// Todo resource
	r.POST("/todo", deps.TodoHandler.CreateTodoHandler)
	r.GET("/todo", deps.TodoHandler.ListTodosHandler)
	r.GET("/todo/:id", deps.TodoHandler.GetTodoHandler)
	r.PUT("/todo/:id", deps.TodoHandler.UpdateTodoHandler)
	r.DELETE("/todo/:id", deps.TodoHandler.DeleteTodoHandler)

	// Auth placeholder
	r.POST("/login", deps.AuthHandler.LoginHandler)

	// WebSocket echo
	r.GET("/ws", deps.EchoHandler.EchoWebSocket)

	return r
}

package main

import (
	"context"

	"github.com/donelist/todo-backend/config"
	"github.com/donelist/todo-backend/db"
	"github.com/donelist/todo-backend/handlers"
	"github.com/donelist/todo-backend/internal/store/postgres"
	"github.com/donelist/todo-backend/logger"
	"github.com/donelist/todo-backend/router"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the process-wide connection pool. Handlers borrow one
	// connection per gateway call; the pool capacity bounds concurrent load.
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to parse database config: %v", err)
	}
	poolConfig.MaxConns = cfg.Database.MaxConns

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Migrate schema before accepting traffic
	if err := db.RunMigrations(cfg.Database.URL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Handlers over the persistence gateway
	todoStore := postgres.NewTodoStore(pool)
	deps := router.Dependencies{
		Config:      cfg,
		TodoHandler: handlers.NewTodoHandler(todoStore),
		AuthHandler: handlers.NewAuthHandler(),
		EchoHandler: handlers.NewEchoHandler(&cfg.Server),
	}

	r := router.SetupRouter(deps)

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

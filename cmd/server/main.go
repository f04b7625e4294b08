// Package main implements the entry point for the task manager server,
// which provides username/password registration, JWT-based login, and
// CRUD endpoints for personal tasks.
package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/abdelmajidelayachi/task-manager/internal/config"
	"github.com/abdelmajidelayachi/task-manager/internal/platform/logger"
)

// main initializes configuration, logging, the database connection and the
// application's dependency graph, then starts the HTTP server.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("Server terminated: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the initialized application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		return nil, err
	}

	return newApplication(cfg, appLogger, db)
}

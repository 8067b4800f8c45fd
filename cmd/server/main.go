// Package main implements the entry point for the users-api server,
// a small user-directory service backed by PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/avelis/users-api/internal/api"
	"github.com/avelis/users-api/internal/config"
	"github.com/avelis/users-api/internal/platform/logger"
	"github.com/avelis/users-api/internal/platform/postgres"
	"github.com/avelis/users-api/internal/service"
	"github.com/avelis/users-api/internal/service/auth"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up|down|status) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run wires the application together: config, logger, database,
// migrations, services, handlers, router, HTTP server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := openDatabase(cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", "error", err)
		}
	}()

	if migrateCmd != "" {
		return runMigrationCommand(db, migrateCmd, appLogger)
	}

	if err := migrateUp(db, appLogger); err != nil {
		return err
	}

	userStore := postgres.NewPostgresUserStore(db, appLogger)
	hasher := auth.NewBcryptHasher(0)

	userService, err := service.NewUserService(userStore, hasher, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}

	userHandler := api.NewUserHandler(userService)
	router := newRouter(userHandler, appLogger)

	return startHTTPServer(context.Background(), cfg, router, appLogger)
}

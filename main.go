// Package main is the entry point for the World of ML program API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"worldofml/src/app/server"
	"worldofml/src/core/domain"
	"worldofml/src/core/ports"
	"worldofml/src/infra/config"
	"worldofml/src/infra/db"
	"worldofml/src/infra/logger"
	"worldofml/src/infra/store"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"store_driver", cfg.Store.Driver,
		"log_level", cfg.Log.Level,
	)

	// Threshold overrides only apply when seeding a fresh document
	seed := domain.DefaultConfig()
	seed.MinHoursForDevice = cfg.Program.MinHoursForDevice
	seed.RubricPassScore = cfg.Program.RubricPassScore

	// Initialize the state document store
	var stateStore ports.StateStore
	switch cfg.Store.Driver {
	case "file":
		stateStore = store.NewFileStore(cfg.Store.StateFile, seed, log)
	case "postgres":
		pg, err := db.New(context.Background(), cfg.Database, log)
		if err != nil {
			return err
		}
		defer pg.Close()

		stateStore, err = store.NewPostgresStore(context.Background(), pg, seed, log)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}

	// Create and run HTTP server
	srv := server.New(cfg, log, stateStore)

	// Run blocks until shutdown signal is received
	return srv.Run()
}

package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/awerp/backend/internal/infrastructure/config"
	"github.com/awerp/backend/internal/infrastructure/logger"
	"github.com/awerp/backend/internal/infrastructure/migration"
)

func main() {
	var (
		action = flag.String("action", "up", "migration action: up, down, steps, version, force")
		steps  = flag.Int("steps", 0, "number of steps for the steps action (negative = down)")
		force  = flag.Int("force", 0, "version for the force action")
		path   = flag.String("path", "migrations", "path to migration files")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	m, err := migration.New(cfg.Database.URL(), *path, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Error("Error closing migrator", zap.Error(err))
		}
	}()

	switch *action {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "steps":
		if *steps == 0 {
			log.Fatal("steps action requires a non-zero -steps value")
		}
		err = m.Steps(*steps)
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil {
			log.Fatal("Failed to get version", zap.Error(verr))
		}
		log.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
	case "force":
		err = m.Force(*force)
	default:
		log.Fatal("Unknown action", zap.String("action", *action))
	}

	if err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
}

// Package main is the schema migration tool for the crewreach service.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/config"
	"github.com/popeskul/crewreach/internal/infrastructure/migrate"
)

const (
	defaultMigrationsPath = "./migrations"
	defaultConfigPath     = "config.yaml"
)

func main() {
	var (
		migrationsPath string
		configPath     string
		steps          int
	)

	flag.StringVar(&migrationsPath, "path", defaultMigrationsPath, "Path to migrations directory")
	flag.StringVar(&configPath, "config", defaultConfigPath, "Config file used when DATABASE_URL is unset")
	flag.IntVar(&steps, "steps", 0, "Number of migrations to apply or roll back; 0 means all")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() { _ = logger.Sync() }()

	_ = godotenv.Load()

	args := flag.Args()
	if len(args) == 0 {
		logger.Fatal("Please specify a command: up, down, or version")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			logger.Fatal("DATABASE_URL is unset and config could not be loaded", zap.Error(err))
		}
		databaseURL = cfg.Database.GetURL()
	}

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    databaseURL,
		MigrationsPath: migrationsPath,
	}, logger)

	switch command := args[0]; command {
	case "up":
		if err := runner.Up(steps); err != nil {
			logger.Fatal("Failed to run migrations up", zap.Error(err))
		}

	case "down":
		// down rolls back one step unless -steps says otherwise.
		if steps == 0 {
			steps = 1
		}
		if err := runner.Down(steps); err != nil {
			logger.Fatal("Failed to run migrations down", zap.Error(err))
		}

	case "version":
		version, dirty, err := runner.Version()
		if err != nil {
			logger.Fatal("Failed to get version", zap.Error(err))
		}
		if dirty {
			fmt.Printf("Current version: %d (dirty)\n", version)
		} else {
			fmt.Printf("Current version: %d\n", version)
		}

	default:
		logger.Fatal("Unknown command, use up, down, or version", zap.String("command", command))
	}
}

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/yeonsu-dev/mentor-match/internal/config"
	"github.com/yeonsu-dev/mentor-match/internal/repository/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	sourceURL := os.Getenv("MIGRATIONS_URL")
	if sourceURL == "" {
		sourceURL = "file://migrations"
	}

	log.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Msg("Running database migrations")

	if err := postgres.RunMigrations(cfg.Database.DSN(), sourceURL); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}

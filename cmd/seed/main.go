// Seeds the portfolio events into postgres. Safe to re-run: rows are keyed by
// title and skipped when present.
package main

import (
	"context"
	"os"

	"github.com/finestevents/backend/config"
	"github.com/finestevents/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfg.Database.DSN == "" {
		log.Fatal().Msg("DATABASE_URL is required to seed")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	for _, event := range repository.SeedEvents() {
		var exists bool
		if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE title=$1)`, event.Title).Scan(&exists); err != nil {
			log.Fatal().Err(err).Msg("check existing event")
		}
		if exists {
			log.Info().Str("title", event.Title).Msg("already seeded, skipping")
			continue
		}

		_, err := pool.Exec(ctx, `INSERT INTO events (id, title, description, category, image_url, location, event_date, guest_count, is_featured)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			uuid.NewString(), event.Title, event.Description, event.Category, event.ImageURL, event.Location, event.EventDate, event.GuestCount, event.IsFeatured)
		if err != nil {
			log.Fatal().Err(err).Str("title", event.Title).Msg("insert event")
		}
		log.Info().Str("title", event.Title).Msg("event seeded")
	}
	log.Info().Msg("seed complete")
}

package main

import (
	"os"

	"github.com/rs/zerolog"

	"casamento/internal/config"
	"casamento/internal/httpserver"
	"casamento/internal/notify"
	"casamento/internal/store"
)

// main boots the service: config → DB → schema → notifier → HTTP server.
func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Str("component", "api").Logger()

	// Load runtime config from environment (DB_URL is mandatory).
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Connect to durable storage (Postgres) using a connection pool.
	db, err := store.NewPostgresStore(cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database unreachable")
	}
	defer db.Close()

	// Ensure required tables/indexes exist so `docker compose up --build` is enough.
	if err := db.EnsureSchema(); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}

	// Telegram notifier is optional; nil when not configured.
	notifier, err := notify.NewNotifier(cfg.TelegramBotToken, cfg.TelegramChatID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("telegram notifier init failed")
	}
	if notifier != nil {
		log.Info().Msg("telegram notifications enabled")
	}

	// Build HTTP router (public health + guest and admin APIs).
	router := httpserver.NewRouter(cfg, db, notifier, log)

	log.Info().Str("addr", cfg.Addr).Msg("server started")
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

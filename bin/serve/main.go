package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-gallery/pkg/config"
	"portfolio-gallery/pkg/handlers"
	"portfolio-gallery/pkg/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize services
	if err := services.InitService(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize service")
	}

	// Start server
	h := handlers.New(cfg, services.Default())
	cfg.PrintServerStartMessage()
	if err := http.ListenAndServe(cfg.ServerAddress(), h.Router()); err != nil {
		log.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
}

package cmd

import (
	"net/http"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"portfolio-gallery/pkg/config"
	"portfolio-gallery/pkg/handlers"
	"portfolio-gallery/pkg/services"
)

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the gallery via HTTP.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := mustInitService()
			serveWebsite(cfg)
		},
	}
}

// serveWebsite runs the web server to serve the gallery content
func serveWebsite(cfg *config.Config) {
	h := handlers.New(cfg, services.Default())

	// Start server
	cfg.PrintServerStartMessage()
	if err := http.ListenAndServe(cfg.ServerAddress(), h.Router()); err != nil {
		log.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
}

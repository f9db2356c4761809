package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"portfolio-gallery/pkg/config"
	"portfolio-gallery/pkg/services"
)

// Configuration flags
var (
	dataURL      string
	dataFile     string
	bucketName   string
	dataObject   string
	portNumber   string
	locale       string
	settingsFile string
	verbose      bool
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "portfolio-gallery",
		Short: "Portfolio Gallery shows portfolio items as a filterable card gallery",
		Long: `Portfolio Gallery is a command line application that loads portfolio items from a
JSON document (a static file, a spreadsheet-to-JSON endpoint or a Cloud Storage object),
normalizes them and serves them as a gallery with category filters and a lightbox.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&dataURL, "url", "u", "", "Set the DATA_URL (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "Set the DATA_FILE (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&dataObject, "object", "o", "", "Set the DATA_OBJECT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&locale, "locale", "l", "", "Set the LOCALE used to order categories (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "Set the SETTINGS_FILE (overrides environment variable)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add commands to root
	rootCmd.AddCommand(newListCategoriesCmd())
	rootCmd.AddCommand(newListItemsCmd())
	rootCmd.AddCommand(newShowCategoryCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	overrides := map[string]string{
		"DATA_URL":      dataURL,
		"DATA_FILE":     dataFile,
		"BUCKET_NAME":   bucketName,
		"DATA_OBJECT":   dataObject,
		"PORT":          portNumber,
		"LOCALE":        locale,
		"SETTINGS_FILE": settingsFile,
	}
	for key, value := range overrides {
		if value != "" {
			os.Setenv(key, value)
		}
	}

	// Load configuration from environment variables (potentially set above)
	return config.Load()
}

// mustInitService loads the configuration and initializes the default service
func mustInitService() *config.Config {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := services.InitService(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize service")
	}
	return cfg
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"portfolio-gallery/pkg/models"
)

// SourceKind identifies where the gallery data document comes from
type SourceKind string

const (
	SourceURL    SourceKind = "url"
	SourceFile   SourceKind = "file"
	SourceBucket SourceKind = "bucket"
)

// Config holds all configuration for the application
type Config struct {
	Source        SourceKind
	DataURL       string
	DataFile      string
	BucketName    string
	DataObject    string
	Port          string
	Locale        string
	ViewsDir      string
	PublicDir     string
	FallbackImage string
	Keys          models.KeyMapping
	Strings       models.Strings
}

// Settings is the optional YAML settings file. Empty fields keep their defaults.
type Settings struct {
	Keys    models.KeyMapping `yaml:"keys"`
	Strings models.Strings    `yaml:"strings"`
}

// ErrSourceNotSet is returned when none of DATA_URL, DATA_FILE or BUCKET_NAME is set
var ErrSourceNotSet = errors.New("no data source configured: set DATA_URL, DATA_FILE or BUCKET_NAME")

// ErrDataObjectNotSet is returned when BUCKET_NAME is set without DATA_OBJECT
var ErrDataObjectNotSet = errors.New("DATA_OBJECT environment variable not set")

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DataURL:       os.Getenv("DATA_URL"),
		DataFile:      os.Getenv("DATA_FILE"),
		BucketName:    os.Getenv("BUCKET_NAME"),
		DataObject:    os.Getenv("DATA_OBJECT"),
		Port:          getenv("PORT", "8080"),
		Locale:        getenv("LOCALE", "zh-Hant"),
		ViewsDir:      getenv("VIEWS_DIR", "./views"),
		PublicDir:     getenv("PUBLIC_DIR", "./public"),
		FallbackImage: getenv("FALLBACK_IMAGE", "/images/placeholder.svg"),
		Keys:          models.DefaultKeyMapping(),
		Strings:       models.DefaultStrings(),
	}

	switch {
	case cfg.DataURL != "":
		cfg.Source = SourceURL
	case cfg.DataFile != "":
		cfg.Source = SourceFile
	case cfg.BucketName != "":
		if cfg.DataObject == "" {
			return nil, ErrDataObjectNotSet
		}
		cfg.Source = SourceBucket
	default:
		return nil, ErrSourceNotSet
	}

	if path := os.Getenv("SETTINGS_FILE"); path != "" {
		settings, err := LoadSettings(path)
		if err != nil {
			return nil, err
		}
		cfg.Apply(settings)
	}

	return cfg, nil
}

// LoadSettings reads a YAML settings file
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}

	log.Info().Str("path", path).Msg("loaded settings file")
	return &settings, nil
}

// Apply overlays non-empty settings onto the configuration
func (c *Config) Apply(s *Settings) {
	c.Keys = c.Keys.Merge(s.Keys)
	c.Strings = c.Strings.Merge(s.Strings)
}

// SourceDescription returns a human readable name of the configured data source
func (c *Config) SourceDescription() string {
	switch c.Source {
	case SourceURL:
		return c.DataURL
	case SourceFile:
		return c.DataFile
	case SourceBucket:
		return fmt.Sprintf("gs://%s/%s", c.BucketName, c.DataObject)
	}
	return ""
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Gallery URL: http://localhost:%s/\n", c.Port)
	fmt.Printf("Feed URL: http://localhost:%s/api/items\n", c.Port)
	fmt.Printf("Data source: %s\n", c.SourceDescription())
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

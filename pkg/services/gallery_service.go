package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"portfolio-gallery/pkg/config"
	"portfolio-gallery/pkg/models"
)

const itemsCacheKey = "items"

// Service handles fetching and caching the gallery items for the session
type Service struct {
	config     *config.Config
	source     DataSource
	normalizer *Normalizer
	itemCache  *cache.Cache
	group      singleflight.Group
	fetches    int
	mu         sync.Mutex
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	initErr        error
	once           sync.Once
)

// NewService creates a service reading from source. Items are cached for the
// lifetime of the service once a fetch succeeds.
func NewService(cfg *config.Config, source DataSource) *Service {
	return &Service{
		config:     cfg,
		source:     source,
		normalizer: NewNormalizer(cfg.Keys, cfg.Strings),
		itemCache:  cache.New(cache.NoExpiration, 0),
	}
}

// ErrServiceNotInitialized is returned when the default service was never created
var ErrServiceNotInitialized = errors.New("gallery service not initialized")

// InitService initializes the default service with the given configuration.
// Later calls return the result of the first one.
func InitService(cfg *config.Config) error {
	once.Do(func() {
		source, err := NewSource(cfg)
		if err != nil {
			initErr = err
			return
		}
		defaultService = NewService(cfg, source)
	})
	return initErr
}

// Default returns the service created by InitService
func Default() *Service {
	return defaultService
}

// GetItems returns the normalized items of the default service
func GetItems(ctx context.Context) ([]models.GalleryItem, error) {
	if defaultService == nil {
		if initErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrServiceNotInitialized, initErr)
		}
		return nil, ErrServiceNotInitialized
	}
	return defaultService.Items(ctx)
}

// Items returns the session's gallery items, fetching them on first use.
// Concurrent first callers share a single fetch, which is not cancelled when
// the caller that started it goes away. Failures are not cached.
func (s *Service) Items(ctx context.Context) ([]models.GalleryItem, error) {
	if cached, found := s.itemCache.Get(itemsCacheKey); found {
		log.Debug().Msg("using cached items")
		return cached.([]models.GalleryItem), nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(itemsCacheKey, func() (any, error) {
		if cached, found := s.itemCache.Get(itemsCacheKey); found {
			return cached, nil
		}

		s.mu.Lock()
		s.fetches++
		s.mu.Unlock()

		log.Info().Str("source", s.source.String()).Msg("fetching gallery data")
		body, err := s.source.Fetch(fetchCtx)
		if err != nil {
			log.Error().Err(err).Str("source", s.source.String()).Msg("failed to fetch gallery data")
			return nil, err
		}

		items, report := s.normalizer.DecodeReport(body)
		log.Info().
			Int("total", report.Total).
			Int("kept", report.Kept).
			Interface("dropped", report.Dropped).
			Msg("normalized gallery data")

		s.itemCache.Set(itemsCacheKey, items, cache.NoExpiration)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.GalleryItem), nil
}

// Validate fetches the document without touching the cache and reports what
// the normalizer kept and dropped.
func (s *Service) Validate(ctx context.Context) ([]models.GalleryItem, Report, error) {
	body, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, Report{}, err
	}
	items, report := s.normalizer.DecodeReport(body)
	return items, report, nil
}

// Fetches returns how many times the data source has been queried
func (s *Service) Fetches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches
}

// Config returns the configuration the service was created with
func (s *Service) Config() *config.Config {
	return s.config
}

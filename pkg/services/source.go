package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"

	"portfolio-gallery/pkg/config"
)

// ErrFetchFailed matches every FetchError
var ErrFetchFailed = errors.New("failed to fetch gallery data")

// FetchError is returned when the data document could not be retrieved
type FetchError struct {
	Source string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.Source, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }

// DataSource returns the raw bytes of the gallery data document
type DataSource interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// NewSource builds the data source selected by the configuration
func NewSource(cfg *config.Config) (DataSource, error) {
	switch cfg.Source {
	case config.SourceURL:
		return NewHTTPSource(cfg.DataURL), nil
	case config.SourceFile:
		return FileSource{Path: cfg.DataFile}, nil
	case config.SourceBucket:
		return BucketSource{Bucket: cfg.BucketName, Object: cfg.DataObject}, nil
	}
	return nil, config.ErrSourceNotSet
}

// HTTPSource fetches the document with a GET request
type HTTPSource struct {
	url    string
	client *resty.Client
}

// NewHTTPSource creates a source for a static JSON URL or a sheet bridge endpoint
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url: url,
		client: resty.New().
			SetDebug(false).
			SetTimeout(30*time.Second).
			SetHeader("Accept", "application/json"),
	}
}

func (s *HTTPSource) String() string { return s.url }

// Fetch performs the request. Non-2xx responses are fetch failures.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	res, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, &FetchError{Source: s.url, Err: err}
	}
	if res.IsError() {
		return nil, &FetchError{Source: s.url, Status: res.StatusCode()}
	}
	return res.Body(), nil
}

// FileSource reads the document from the local filesystem
type FileSource struct {
	Path string
}

func (s FileSource) String() string { return s.Path }

func (s FileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &FetchError{Source: s.Path, Err: err}
	}
	return data, nil
}

// BucketSource reads the document from Google Cloud Storage. An object name
// ending in "/" selects every .json object under that prefix; their arrays
// are concatenated in name order.
type BucketSource struct {
	Bucket string
	Object string
}

func (s BucketSource) String() string {
	return fmt.Sprintf("gs://%s/%s", s.Bucket, s.Object)
}

func (s BucketSource) Fetch(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, &FetchError{Source: s.String(), Err: err}
	}
	defer client.Close()

	bucket := client.Bucket(s.Bucket)
	if !strings.HasSuffix(s.Object, "/") {
		data, err := readObject(ctx, bucket, s.Object)
		if err != nil {
			return nil, &FetchError{Source: s.String(), Err: err}
		}
		return data, nil
	}

	names, err := listJSONObjects(ctx, bucket, s.Object)
	if err != nil {
		return nil, &FetchError{Source: s.String(), Err: err}
	}

	parts := make([][]byte, 0, len(names))
	for _, name := range names {
		data, err := readObject(ctx, bucket, name)
		if err != nil {
			return nil, &FetchError{Source: s.String(), Err: err}
		}
		parts = append(parts, data)
	}
	return concatArrays(parts), nil
}

func readObject(ctx context.Context, bucket *storage.BucketHandle, name string) ([]byte, error) {
	reader, err := bucket.Object(name).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open object %s: %w", name, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", name, err)
	}
	return data, nil
}

func listJSONObjects(ctx context.Context, bucket *storage.BucketHandle, prefix string) ([]string, error) {
	it := bucket.Objects(ctx, &storage.Query{Prefix: prefix})
	var names []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list objects under %s: %w", prefix, err)
		}
		if strings.HasSuffix(strings.ToLower(attrs.Name), ".json") {
			names = append(names, attrs.Name)
		}
	}
	sort.Strings(names)
	log.Info().Str("prefix", prefix).Int("objects", len(names)).Msg("listed data objects")
	return names, nil
}

// concatArrays joins JSON array documents into one array. Documents that do
// not decode as arrays are skipped.
func concatArrays(parts [][]byte) []byte {
	merged := make([]json.RawMessage, 0)
	for i, part := range parts {
		var entries []json.RawMessage
		if err := json.Unmarshal(part, &entries); err != nil {
			log.Warn().Err(err).Int("part", i).Msg("skipping data object that is not a JSON array")
			continue
		}
		merged = append(merged, entries...)
	}

	data, err := json.Marshal(merged)
	if err != nil {
		return []byte("[]")
	}
	return data
}

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-gallery/pkg/config"
	"portfolio-gallery/pkg/models"
)

type fakeSource struct {
	mu      sync.Mutex
	body    []byte
	err     error
	calls   int
	gate    chan struct{}
	entered chan struct{}
}

func (f *fakeSource) Fetch(ctx context.Context) ([]byte, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, &FetchError{Source: "fake", Err: ctx.Err()}
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.body, f.err
}

func (f *fakeSource) String() string { return "fake" }

func testConfig() *config.Config {
	return &config.Config{
		Source:  config.SourceFile,
		Locale:  "zh-Hant",
		Keys:    models.DefaultKeyMapping(),
		Strings: models.DefaultStrings(),
	}
}

func TestItemsFetchedOnce(t *testing.T) {
	source := &fakeSource{body: []byte(`[{"name":"a","link":"a.jpg","category":"A"}]`)}
	s := NewService(testConfig(), source)

	for i := 0; i < 3; i++ {
		items, err := s.Items(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "a", items[0].Name)
	}
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, 1, s.Fetches())
}

func TestItemsConcurrentFirstCallersShareFetch(t *testing.T) {
	source := &fakeSource{
		body:    []byte(`[]`),
		gate:    make(chan struct{}),
		entered: make(chan struct{}, 8),
	}
	s := NewService(testConfig(), source)

	var started, wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		started.Add(1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			items, err := s.Items(context.Background())
			assert.NoError(t, err)
			assert.Empty(t, items)
		}()
	}
	started.Wait()

	// Hold the fetch open until the other callers have queued behind it
	<-source.entered
	time.Sleep(50 * time.Millisecond)
	close(source.gate)
	wg.Wait()

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, 1, s.Fetches())
	assert.Empty(t, source.entered)
}

func TestItemsSharedFetchSurvivesCancelledCaller(t *testing.T) {
	source := &fakeSource{
		body:    []byte(`[{"link":"a.jpg"}]`),
		gate:    make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	s := NewService(testConfig(), source)

	ctx, cancel := context.WithCancel(context.Background())
	type result struct {
		items []models.GalleryItem
		err   error
	}
	first := make(chan result, 1)
	go func() {
		items, err := s.Items(ctx)
		first <- result{items, err}
	}()

	<-source.entered
	second := make(chan result, 1)
	go func() {
		items, err := s.Items(context.Background())
		second <- result{items, err}
	}()

	cancel()
	time.Sleep(20 * time.Millisecond)
	close(source.gate)

	for _, ch := range []chan result{first, second} {
		r := <-ch
		require.NoError(t, r.err)
		assert.Len(t, r.items, 1)
	}
	assert.Equal(t, 1, source.calls)
}

func TestItemsFailureNotCached(t *testing.T) {
	source := &fakeSource{err: &FetchError{Source: "fake", Err: errors.New("boom")}}
	s := NewService(testConfig(), source)

	_, err := s.Items(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)

	source.err = nil
	source.body = []byte(`[{"link":"a.jpg"}]`)
	items, err := s.Items(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, source.calls)
}

func TestItemsMalformedBodyIsEmpty(t *testing.T) {
	source := &fakeSource{body: []byte(`not json`)}
	s := NewService(testConfig(), source)

	items, err := s.Items(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	_, _ = s.Items(context.Background())
	assert.Equal(t, 1, source.calls)
}

func TestValidateBypassesCache(t *testing.T) {
	source := &fakeSource{body: []byte(`[{"link":"a.jpg"},{"link":"javascript:x"}]`)}
	s := NewService(testConfig(), source)

	_, err := s.Items(context.Background())
	require.NoError(t, err)

	items, report, err := s.Validate(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Dropped[DropScript])
	assert.Equal(t, 2, source.calls)
}

func resetDefaultService(t *testing.T) {
	t.Helper()
	reset := func() {
		once = sync.Once{}
		defaultService = nil
		initErr = nil
	}
	reset()
	t.Cleanup(reset)
}

func TestInitServiceKeepsFirstError(t *testing.T) {
	resetDefaultService(t)

	err := InitService(&config.Config{})
	require.ErrorIs(t, err, config.ErrSourceNotSet)

	// A second call does not hide the failure
	err = InitService(testConfig())
	assert.ErrorIs(t, err, config.ErrSourceNotSet)
	assert.Nil(t, Default())

	_, err = GetItems(context.Background())
	assert.ErrorIs(t, err, ErrServiceNotInitialized)
	assert.ErrorIs(t, err, config.ErrSourceNotSet)
}

func TestInitService(t *testing.T) {
	resetDefaultService(t)

	cfg := testConfig()
	cfg.DataFile = "missing.json"
	require.NoError(t, InitService(cfg))
	require.NotNil(t, Default())

	_, err := GetItems(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)
}

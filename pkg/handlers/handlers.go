package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/eknkc/pug"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"portfolio-gallery/pkg/config"
	"portfolio-gallery/pkg/models"
	"portfolio-gallery/pkg/services"
	"portfolio-gallery/pkg/widget"
)

// Handlers serves the gallery over HTTP
type Handlers struct {
	config  *config.Config
	service *services.Service
}

// New creates handlers backed by service
func New(cfg *config.Config, service *services.Service) *Handlers {
	return &Handlers{config: cfg, service: service}
}

// Router returns the routes of the gallery server
func (h *Handlers) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.GalleryHandler)
	r.Get("/api/items", h.ItemsHandler)
	r.Get("/api/categories", h.CategoriesHandler)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/*", http.FileServer(http.Dir(h.config.PublicDir)))
	return r
}

func (h *Handlers) newWidget() *widget.Widget {
	return widget.New(widget.Options{
		Strings:       h.config.Strings,
		Locale:        h.config.Locale,
		FallbackImage: h.config.FallbackImage,
	})
}

// GalleryHandler renders the gallery page. Query parameters select the
// category and optionally the card shown in the lightbox.
func (h *Handlers) GalleryHandler(w http.ResponseWriter, r *http.Request) {
	log.Info().Str("query", r.URL.RawQuery).Msg("generating gallery page")

	gallery := h.newWidget()
	status := http.StatusOK
	if err := gallery.Mount(r.Context(), h.service); err != nil {
		status = http.StatusBadGateway
	} else {
		if category := r.URL.Query().Get("category"); category != "" {
			_ = gallery.Dispatch(widget.SelectCategory(category))
		}
		// Previews the browser reported as broken render with the fallback image
		for _, id := range strings.Split(r.URL.Query().Get("failed"), ",") {
			if id = strings.TrimSpace(id); id != "" {
				if err := gallery.Dispatch(widget.MediaError(id)); err != nil {
					log.Debug().Err(err).Str("failed", id).Msg("ignoring failed preview")
				}
			}
		}
		if open := r.URL.Query().Get("open"); open != "" {
			_ = gallery.Dispatch(widget.Focus(open))
			if err := gallery.Dispatch(widget.OpenPreview(open)); err != nil {
				log.Warn().Err(err).Str("open", open).Msg("cannot open preview")
			}
		}
	}

	template, err := pug.CompileFile(filepath.Join(h.config.ViewsDir, "index.pug"), pug.Options{})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		log.Error().Err(err).Msg("template error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := template.Execute(w, newPage(gallery, h.config.Strings, h.config.FallbackImage)); err != nil {
		log.Error().Err(err).Msg("template execution error")
	}
}

// ItemsHandler returns the normalized items of a category as JSON. Unknown
// categories fall back to all items, as on the page.
func (h *Handlers) ItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, ok := h.items(w, r)
	if !ok {
		return
	}

	all := h.config.Strings.All
	st := widget.Reduce(widget.State{Current: all}, widget.DataLoaded(items), all)
	if category := r.URL.Query().Get("category"); category != "" {
		st = widget.Reduce(st, widget.SelectCategory(category), all)
	}

	filtered := make([]models.GalleryItem, 0, len(items))
	for _, i := range widget.Filter(items, st.Current, all) {
		filtered = append(filtered, items[i])
	}
	writeJSON(w, http.StatusOK, filtered)
}

// CategoriesHandler returns the category navigation as JSON
func (h *Handlers) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	items, ok := h.items(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, widget.Categories(items, h.config.Locale, h.config.Strings))
}

func (h *Handlers) items(w http.ResponseWriter, r *http.Request) ([]models.GalleryItem, bool) {
	items, err := h.service.Items(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrFetchFailed) {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, map[string]string{"error": h.config.Strings.LoadError})
		return nil, false
	}
	return items, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write JSON response")
	}
}

package widget

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"portfolio-gallery/pkg/models"
)

var (
	// ErrUnknownCard is returned when an action names a card that is not rendered
	ErrUnknownCard = errors.New("unknown card")
	// ErrNotClickable is returned when opening a preview that cannot be enlarged
	ErrNotClickable = errors.New("preview is not clickable")
	// ErrUnknownAction is returned for an action kind the widget does not handle
	ErrUnknownAction = errors.New("unknown action")
)

// Loader provides the session's gallery items
type Loader interface {
	Items(ctx context.Context) ([]models.GalleryItem, error)
}

// State is the widget's UI state. It changes only through Reduce.
type State struct {
	Items   []models.GalleryItem
	Current string
	Loaded  bool
}

// Options configures a Widget
type Options struct {
	Strings           models.Strings
	Locale            string
	FallbackImage     string
	OverlayFocusables []string
}

// Widget owns the state, document and lightbox of one gallery instance.
// It is not safe for concurrent use.
type Widget struct {
	state    State
	doc      *Document
	renderer *Renderer
	lightbox *Lightbox
	strings  models.Strings
}

// New creates a widget with an empty document
func New(opts Options) *Widget {
	return &Widget{
		state: State{Current: opts.Strings.All},
		doc:   NewDocument(opts.OverlayFocusables...),
		renderer: &Renderer{
			Strings:       opts.Strings,
			Locale:        opts.Locale,
			FallbackImage: opts.FallbackImage,
		},
		lightbox: &Lightbox{},
		strings:  opts.Strings,
	}
}

// State returns a copy of the current state
func (w *Widget) State() State { return w.state }

// Document returns the rendering surface
func (w *Widget) Document() *Document { return w.doc }

// Lightbox returns the overlay controller
func (w *Widget) Lightbox() *Lightbox { return w.lightbox }

// Mount loads the items and performs the first render. A load failure is
// shown on the document and returned.
func (w *Widget) Mount(ctx context.Context, loader Loader) error {
	w.doc.setBusy(true)
	w.doc.Status = w.strings.Loading

	items, err := loader.Items(ctx)
	if err != nil {
		_ = w.Dispatch(LoadFailed(err))
		return err
	}
	return w.Dispatch(DataLoaded(items))
}

// Reduce applies a state-changing action. Actions that only touch the
// document or overlay leave the state as is.
func Reduce(st State, a Action, all string) State {
	switch a.Kind {
	case ActDataLoaded:
		st.Items = a.Items
		st.Loaded = true
	case ActSelectCategory:
		st.Current = a.Category
	default:
		return st
	}

	if st.Current != all && !HasCategory(st.Items, st.Current) {
		st.Current = all
	}
	return st
}

// Dispatch runs one action to completion: the state transition, then the
// render or overlay step it implies.
func (w *Widget) Dispatch(a Action) error {
	log.Debug().Str("action", string(a.Kind)).Str("target", a.Target).Msg("dispatch")

	switch a.Kind {
	case ActDataLoaded, ActSelectCategory:
		w.state = Reduce(w.state, a, w.strings.All)
		w.renderer.Render(w.doc, w.state)
		return nil

	case ActLoadFailed:
		log.Error().Err(a.Err).Msg("gallery data failed to load")
		w.doc.Error = w.strings.LoadError
		w.doc.Status = w.strings.LoadFailed
		w.doc.setBusy(false)
		return nil

	case ActOpenPreview:
		return w.openPreview(a.Target)

	case ActCloseOverlay:
		w.lightbox.Close(w.doc)
		return nil

	case ActBackdropClick:
		if a.Target == OverlayID {
			w.lightbox.Close(w.doc)
		}
		return nil

	case ActKeyEscape:
		w.lightbox.Close(w.doc)
		return nil

	case ActKeyTab:
		w.lightbox.Tab(w.doc, a.Shift)
		return nil

	case ActKeyActivate:
		return w.activate()

	case ActMediaError, ActMediaLoad:
		card, ok := w.doc.Card(a.Target)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCard, a.Target)
		}
		if a.Kind == ActMediaError {
			w.renderer.MediaFailed(card)
		} else {
			w.renderer.MediaLoaded(card)
		}
		return nil

	case ActFocus:
		w.doc.Focused = a.Target
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownAction, a.Kind)
}

func (w *Widget) openPreview(id string) error {
	card, ok := w.doc.Card(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCard, id)
	}
	if !card.Preview.Clickable {
		return fmt.Errorf("%w: %s", ErrNotClickable, id)
	}
	w.lightbox.Open(w.doc, Content{
		Src:     card.Preview.Src,
		Title:   card.Title,
		Caption: card.Desc,
	})
	return nil
}

// activate handles Enter or Space on the focused element
func (w *Widget) activate() error {
	focused := w.doc.Focused
	switch {
	case focused == OverlayCloseID:
		w.lightbox.Close(w.doc)
	case IsPreviewID(focused) && w.lightbox.State() == Closed:
		card, ok := w.doc.Card(focused)
		if ok && card.Preview.Clickable {
			return w.openPreview(focused)
		}
	}
	return nil
}

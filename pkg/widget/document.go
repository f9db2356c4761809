package widget

import (
	"strconv"
	"strings"

	"portfolio-gallery/pkg/models"
)

// Element IDs of the host page the widget renders into
const (
	OverlayID      = "lightbox"
	OverlayCloseID = "lightbox-close"
)

// Preview is the media element of a card
type Preview struct {
	ID        string
	Type      models.MediaType
	Src       string
	Alt       string
	Clickable bool
	Failed    bool
	Controls  bool
}

// Card is one rendered gallery item
type Card struct {
	ID      string
	Index   int
	Title   string
	Desc    string
	Preview Preview
}

// NavEntry is one rendered category button
type NavEntry struct {
	models.Category
	Active bool
}

// Overlay is the lightbox structure of the page
type Overlay struct {
	Visible    bool
	AriaHidden bool
	Src        string
	Title      string
	Caption    string
	Focusables []string
}

// Document is the rendering surface: card grid, category nav, status and
// error areas, and the overlay. Each render pass replaces Cards and Nav as a
// whole.
type Document struct {
	Cards        []Card
	Nav          []NavEntry
	Status       string
	Error        string
	Busy         bool
	ScrollLocked bool
	Focused      string
	Overlay      Overlay
	Renders      int

	// OnBusyChange, if set, observes every busy indicator change
	OnBusyChange func(busy bool)
}

// NewDocument creates an empty document. The overlay's focusable elements
// default to its close control.
func NewDocument(overlayFocusables ...string) *Document {
	if len(overlayFocusables) == 0 {
		overlayFocusables = []string{OverlayCloseID}
	}
	return &Document{
		Overlay: Overlay{
			AriaHidden: true,
			Focusables: overlayFocusables,
		},
	}
}

func (d *Document) setBusy(busy bool) {
	d.Busy = busy
	if d.OnBusyChange != nil {
		d.OnBusyChange(busy)
	}
}

func (d *Document) attach(nav []NavEntry, cards []Card, status string) {
	d.Nav = nav
	d.Cards = cards
	d.Status = status
	d.Renders++
}

// Card finds a rendered card by its card or preview ID
func (d *Document) Card(id string) (*Card, bool) {
	for i := range d.Cards {
		if d.Cards[i].ID == id || d.Cards[i].Preview.ID == id {
			return &d.Cards[i], true
		}
	}
	return nil, false
}

// InOverlay reports whether id is one of the overlay's focusable elements
func (d *Document) InOverlay(id string) bool {
	for _, f := range d.Overlay.Focusables {
		if f == id {
			return true
		}
	}
	return false
}

// CardID returns the element ID of the card for the item at index
func CardID(index int) string {
	return "card-" + strconv.Itoa(index)
}

// PreviewID returns the element ID of the media preview for the item at index
func PreviewID(index int) string {
	return "preview-" + strconv.Itoa(index)
}

// IsPreviewID reports whether id names a media preview element
func IsPreviewID(id string) bool {
	return strings.HasPrefix(id, "preview-")
}

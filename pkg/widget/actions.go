package widget

import "portfolio-gallery/pkg/models"

// ActionKind names an event the widget reacts to
type ActionKind string

const (
	ActDataLoaded     ActionKind = "data-loaded"
	ActLoadFailed     ActionKind = "load-failed"
	ActSelectCategory ActionKind = "select-category"
	ActOpenPreview    ActionKind = "open-preview"
	ActCloseOverlay   ActionKind = "close-overlay"
	ActBackdropClick  ActionKind = "backdrop-click"
	ActKeyEscape      ActionKind = "key-escape"
	ActKeyTab         ActionKind = "key-tab"
	ActKeyActivate    ActionKind = "key-activate"
	ActMediaError     ActionKind = "media-error"
	ActMediaLoad      ActionKind = "media-load"
	ActFocus          ActionKind = "focus"
)

// Action is one event fed to Widget.Dispatch
type Action struct {
	Kind     ActionKind
	Items    []models.GalleryItem
	Category string
	Target   string
	Shift    bool
	Err      error
}

func DataLoaded(items []models.GalleryItem) Action {
	return Action{Kind: ActDataLoaded, Items: items}
}

func LoadFailed(err error) Action {
	return Action{Kind: ActLoadFailed, Err: err}
}

func SelectCategory(category string) Action {
	return Action{Kind: ActSelectCategory, Category: category}
}

// OpenPreview opens the lightbox for a card or preview ID
func OpenPreview(id string) Action {
	return Action{Kind: ActOpenPreview, Target: id}
}

func CloseOverlay() Action {
	return Action{Kind: ActCloseOverlay}
}

// BackdropClick is a click inside the overlay. Target is the element that
// was clicked; only OverlayID itself closes the overlay.
func BackdropClick(target string) Action {
	return Action{Kind: ActBackdropClick, Target: target}
}

func KeyEscape() Action {
	return Action{Kind: ActKeyEscape}
}

func KeyTab(shift bool) Action {
	return Action{Kind: ActKeyTab, Shift: shift}
}

// KeyActivate is Enter or Space on the focused element
func KeyActivate() Action {
	return Action{Kind: ActKeyActivate}
}

func MediaError(id string) Action {
	return Action{Kind: ActMediaError, Target: id}
}

func MediaLoad(id string) Action {
	return Action{Kind: ActMediaLoad, Target: id}
}

func Focus(id string) Action {
	return Action{Kind: ActFocus, Target: id}
}

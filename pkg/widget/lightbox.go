package widget

// LightboxState is the state of the overlay
type LightboxState int

const (
	Closed LightboxState = iota
	Open
)

func (s LightboxState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Content is what the overlay displays
type Content struct {
	Src     string
	Title   string
	Caption string
}

// Lightbox controls the single overlay instance of a document
type Lightbox struct {
	state       LightboxState
	content     Content
	returnFocus string
	trapArmed   bool
}

// State returns the current overlay state
func (l *Lightbox) State() LightboxState { return l.state }

// Content returns what the overlay currently shows
func (l *Lightbox) Content() Content { return l.content }

// ReturnFocus returns the element focus goes back to on close
func (l *Lightbox) ReturnFocus() string { return l.returnFocus }

// TrapArmed reports whether Tab is being confined to the overlay
func (l *Lightbox) TrapArmed() bool { return l.trapArmed }

// Open shows c in the overlay. Opening while open replaces the content and
// keeps the focus remembered by the first open.
func (l *Lightbox) Open(doc *Document, c Content) {
	if l.state == Closed {
		l.returnFocus = doc.Focused
	}
	l.state = Open
	l.content = c
	l.trapArmed = true

	doc.Overlay.Visible = true
	doc.Overlay.AriaHidden = false
	doc.Overlay.Src = c.Src
	doc.Overlay.Title = c.Title
	doc.Overlay.Caption = c.Caption
	doc.ScrollLocked = true
	doc.Focused = initialFocus(doc)
}

// Close hides the overlay and restores focus. It reports whether the overlay was open.
func (l *Lightbox) Close(doc *Document) bool {
	if l.state == Closed {
		return false
	}
	l.state = Closed
	l.content = Content{}
	l.trapArmed = false

	doc.Overlay.Visible = false
	doc.Overlay.AriaHidden = true
	doc.Overlay.Src = ""
	doc.Overlay.Title = ""
	doc.Overlay.Caption = ""
	doc.ScrollLocked = false
	doc.Focused = l.returnFocus
	l.returnFocus = ""
	return true
}

// Tab moves focus within the overlay. It reports whether the key was
// consumed by the trap.
func (l *Lightbox) Tab(doc *Document, shift bool) bool {
	if !l.trapArmed {
		return false
	}

	focusables := doc.Overlay.Focusables
	switch len(focusables) {
	case 0:
		return true
	case 1:
		doc.Focused = focusables[0]
		return true
	}

	current := -1
	for i, id := range focusables {
		if id == doc.Focused {
			current = i
			break
		}
	}

	last := len(focusables) - 1
	next := 0
	switch {
	case shift && current <= 0:
		next = last
	case shift:
		next = current - 1
	case current == -1 || current == last:
		next = 0
	default:
		next = current + 1
	}
	doc.Focused = focusables[next]
	return true
}

func initialFocus(doc *Document) string {
	if doc.InOverlay(OverlayCloseID) {
		return OverlayCloseID
	}
	if len(doc.Overlay.Focusables) > 0 {
		return doc.Overlay.Focusables[0]
	}
	return OverlayID
}

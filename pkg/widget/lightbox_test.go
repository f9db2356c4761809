package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-gallery/pkg/models"
)

func TestOpenThenEscape(t *testing.T) {
	w := mounted(t, itemsIn("A", "B"))
	doc := w.Document()

	require.NoError(t, w.Dispatch(Focus("preview-1")))
	require.NoError(t, w.Dispatch(OpenPreview("preview-1")))

	assert.Equal(t, Open, w.Lightbox().State())
	assert.True(t, doc.Overlay.Visible)
	assert.False(t, doc.Overlay.AriaHidden)
	assert.True(t, doc.ScrollLocked)
	assert.Equal(t, "imgb.jpg", doc.Overlay.Src)
	assert.Equal(t, "B item", doc.Overlay.Title)
	assert.Equal(t, "desc", doc.Overlay.Caption)
	assert.Equal(t, OverlayCloseID, doc.Focused)
	assert.True(t, w.Lightbox().TrapArmed())

	require.NoError(t, w.Dispatch(KeyEscape()))

	assert.Equal(t, Closed, w.Lightbox().State())
	assert.False(t, doc.Overlay.Visible)
	assert.True(t, doc.Overlay.AriaHidden)
	assert.Empty(t, doc.Overlay.Src)
	assert.Empty(t, doc.Overlay.Caption)
	assert.False(t, doc.ScrollLocked)
	assert.Equal(t, "preview-1", doc.Focused)
	assert.False(t, w.Lightbox().TrapArmed())
	assert.Equal(t, Content{}, w.Lightbox().Content())
}

func TestEscapeWhileClosedIsNoop(t *testing.T) {
	w := mounted(t, itemsIn("A"))
	require.NoError(t, w.Dispatch(Focus("nav")))
	require.NoError(t, w.Dispatch(KeyEscape()))
	assert.Equal(t, "nav", w.Document().Focused)
	assert.Equal(t, Closed, w.Lightbox().State())
}

func TestKeyboardActivationOpens(t *testing.T) {
	w := mounted(t, itemsIn("A"))

	require.NoError(t, w.Dispatch(Focus("preview-0")))
	require.NoError(t, w.Dispatch(KeyActivate()))
	assert.Equal(t, Open, w.Lightbox().State())

	// Enter on the focused close control closes
	require.NoError(t, w.Dispatch(KeyActivate()))
	assert.Equal(t, Closed, w.Lightbox().State())
	assert.Equal(t, "preview-0", w.Document().Focused)
}

func TestBackdropClick(t *testing.T) {
	w := mounted(t, itemsIn("A"))
	require.NoError(t, w.Dispatch(OpenPreview("card-0")))

	require.NoError(t, w.Dispatch(BackdropClick("lightbox-img")))
	assert.Equal(t, Open, w.Lightbox().State())

	require.NoError(t, w.Dispatch(BackdropClick(OverlayID)))
	assert.Equal(t, Closed, w.Lightbox().State())
}

func TestCloseControl(t *testing.T) {
	w := mounted(t, itemsIn("A"))
	require.NoError(t, w.Dispatch(OpenPreview("card-0")))
	require.NoError(t, w.Dispatch(CloseOverlay()))
	assert.Equal(t, Closed, w.Lightbox().State())
	assert.False(t, w.Lightbox().Close(w.Document()))
}

func TestTabCyclesWithinOverlay(t *testing.T) {
	w := mounted(t, itemsIn("A"), OverlayCloseID, "lightbox-prev", "lightbox-next")
	doc := w.Document()
	require.NoError(t, w.Dispatch(OpenPreview("card-0")))
	require.Equal(t, OverlayCloseID, doc.Focused)

	require.NoError(t, w.Dispatch(KeyTab(false)))
	assert.Equal(t, "lightbox-prev", doc.Focused)
	require.NoError(t, w.Dispatch(KeyTab(false)))
	assert.Equal(t, "lightbox-next", doc.Focused)

	// Forward from the last wraps to the first
	require.NoError(t, w.Dispatch(KeyTab(false)))
	assert.Equal(t, OverlayCloseID, doc.Focused)

	// Backward from the first wraps to the last
	require.NoError(t, w.Dispatch(KeyTab(true)))
	assert.Equal(t, "lightbox-next", doc.Focused)
	require.NoError(t, w.Dispatch(KeyTab(true)))
	assert.Equal(t, "lightbox-prev", doc.Focused)

	// Focus that escaped the overlay is pulled back in
	doc.Focused = "preview-0"
	require.NoError(t, w.Dispatch(KeyTab(false)))
	assert.Equal(t, OverlayCloseID, doc.Focused)
	doc.Focused = "preview-0"
	require.NoError(t, w.Dispatch(KeyTab(true)))
	assert.Equal(t, "lightbox-next", doc.Focused)
}

func TestTabSingleFocusable(t *testing.T) {
	w := mounted(t, itemsIn("A"))
	doc := w.Document()
	require.NoError(t, w.Dispatch(OpenPreview("card-0")))

	for _, shift := range []bool{false, true, false} {
		require.NoError(t, w.Dispatch(KeyTab(shift)))
		assert.Equal(t, OverlayCloseID, doc.Focused)
	}
}

func TestTabWhileClosedIsIgnored(t *testing.T) {
	w := mounted(t, itemsIn("A"))
	require.NoError(t, w.Dispatch(Focus("preview-0")))
	require.NoError(t, w.Dispatch(KeyTab(false)))
	assert.Equal(t, "preview-0", w.Document().Focused)
}

func TestReopenReplacesContent(t *testing.T) {
	w := mounted(t, itemsIn("A", "B"))
	doc := w.Document()

	require.NoError(t, w.Dispatch(Focus("preview-0")))
	require.NoError(t, w.Dispatch(OpenPreview("preview-0")))
	require.NoError(t, w.Dispatch(OpenPreview("preview-1")))

	assert.Equal(t, Open, w.Lightbox().State())
	assert.Equal(t, "imgb.jpg", doc.Overlay.Src)
	assert.True(t, w.Lightbox().TrapArmed())
	assert.Equal(t, "preview-0", w.Lightbox().ReturnFocus())

	require.NoError(t, w.Dispatch(KeyEscape()))
	assert.Equal(t, "preview-0", doc.Focused)
}

func TestLightboxWithoutWidget(t *testing.T) {
	doc := NewDocument("a", "b")
	doc.Focused = "outside"
	lb := &Lightbox{}

	lb.Open(doc, Content{Src: "x.jpg", Title: "x", Caption: "caption"})
	assert.Equal(t, "a", doc.Focused)
	assert.Equal(t, "open", lb.State().String())

	assert.True(t, lb.Close(doc))
	assert.Equal(t, "outside", doc.Focused)
	assert.Equal(t, "closed", lb.State().String())
	assert.False(t, lb.Tab(doc, false))
}

func TestOpenUnknownCard(t *testing.T) {
	w := mounted(t, []models.GalleryItem{})
	assert.ErrorIs(t, w.Dispatch(OpenPreview("preview-3")), ErrUnknownCard)
}

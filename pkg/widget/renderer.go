package widget

import (
	"portfolio-gallery/pkg/models"
)

// Renderer projects the widget state onto a document
type Renderer struct {
	Strings       models.Strings
	Locale        string
	FallbackImage string
}

// Render replaces the document's nav, cards and status with the projection
// of st. The busy indicator is held for the duration of the pass.
func (r *Renderer) Render(doc *Document, st State) {
	doc.setBusy(true)

	categories := Categories(st.Items, r.Locale, r.Strings)
	nav := make([]NavEntry, 0, len(categories))
	for _, c := range categories {
		nav = append(nav, NavEntry{Category: c, Active: c.Name == st.Current})
	}

	visible := Filter(st.Items, st.Current, r.Strings.All)
	cards := make([]Card, 0, len(visible))
	for _, i := range visible {
		cards = append(cards, r.card(i, st.Items[i]))
	}

	status := ""
	switch {
	case len(st.Items) == 0:
		status = r.Strings.EmptyAll
	case len(cards) == 0:
		status = r.Strings.EmptyCategory
	}

	doc.attach(nav, cards, status)
	doc.setBusy(false)
}

func (r *Renderer) card(index int, item models.GalleryItem) Card {
	preview := Preview{
		ID:   PreviewID(index),
		Type: item.Type,
		Src:  item.Link,
		Alt:  item.Name,
	}
	if item.Type == models.MediaVideo {
		preview.Controls = true
	} else {
		preview.Clickable = true
	}

	return Card{
		ID:      CardID(index),
		Index:   index,
		Title:   item.Name,
		Desc:    item.Desc,
		Preview: preview,
	}
}

// MediaFailed swaps a broken image for the fallback asset and disables its activation
func (r *Renderer) MediaFailed(card *Card) {
	if card.Preview.Type != models.MediaImage {
		return
	}
	card.Preview.Src = r.FallbackImage
	card.Preview.Failed = true
	card.Preview.Clickable = false
}

// MediaLoaded re-enables activation of an image that loaded. The fallback
// asset never becomes clickable.
func (r *Renderer) MediaLoaded(card *Card) {
	if card.Preview.Type != models.MediaImage || card.Preview.Src == r.FallbackImage {
		return
	}
	card.Preview.Failed = false
	card.Preview.Clickable = true
}

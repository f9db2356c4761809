package handlers

import (
	"net/url"

	"portfolio-gallery/pkg/models"
	"portfolio-gallery/pkg/widget"
)

// page is the template data of index.pug. Every value a loop body needs is
// precomputed on its element.
type page struct {
	Title   string
	Status  string
	Error   string
	Busy    bool
	Nav     []navLink
	Cards   []cardView
	Overlay overlayView
}

type navLink struct {
	Name  string
	Count int
	Href  string
	Class string
}

type cardView struct {
	ID               string
	PreviewID        string
	Title            string
	Desc             string
	Src              string
	Alt              string
	Video            bool
	Clickable        bool
	Failed           bool
	Href             string
	Fallback         string
	VideoUnsupported string
}

type overlayView struct {
	Visible    bool
	AriaHidden string
	Class      string
	Src        string
	Title      string
	Caption    string
	CloseHref  string
	CloseLabel string
}

func newPage(w *widget.Widget, s models.Strings, fallback string) page {
	doc := w.Document()
	current := w.State().Current

	p := page{
		Title:  s.All,
		Status: doc.Status,
		Error:  doc.Error,
		Busy:   doc.Busy,
		Nav:    make([]navLink, 0, len(doc.Nav)),
		Cards:  make([]cardView, 0, len(doc.Cards)),
	}

	for _, entry := range doc.Nav {
		link := navLink{
			Name:  entry.Name,
			Count: entry.Count,
			Href:  pageHref(entry.Name, "", s),
			Class: "category",
		}
		if entry.Active {
			link.Class = "category active"
		}
		p.Nav = append(p.Nav, link)
	}

	for _, card := range doc.Cards {
		p.Cards = append(p.Cards, cardView{
			ID:               card.ID,
			PreviewID:        card.Preview.ID,
			Title:            card.Title,
			Desc:             card.Desc,
			Src:              card.Preview.Src,
			Alt:              card.Preview.Alt,
			Video:            card.Preview.Type == models.MediaVideo,
			Clickable:        card.Preview.Clickable,
			Failed:           card.Preview.Failed,
			Href:             pageHref(current, card.Preview.ID, s),
			Fallback:         fallback,
			VideoUnsupported: s.VideoUnsupported,
		})
	}

	p.Overlay = overlayView{
		Visible:    doc.Overlay.Visible,
		AriaHidden: "true",
		Class:      "lightbox",
		Src:        doc.Overlay.Src,
		Title:      doc.Overlay.Title,
		Caption:    doc.Overlay.Caption,
		CloseHref:  pageHref(current, "", s),
		CloseLabel: s.Close,
	}
	if !doc.Overlay.AriaHidden {
		p.Overlay.AriaHidden = "false"
	}
	if doc.Overlay.Visible {
		p.Overlay.Class = "lightbox open"
	}
	return p
}

func pageHref(category, open string, s models.Strings) string {
	q := url.Values{}
	if category != "" && category != s.All {
		q.Set("category", category)
	}
	if open != "" {
		q.Set("open", open)
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

package models

// MediaType is the kind of media an item links to
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// RawRecord is one undecoded entry of the data document
type RawRecord map[string]any

// GalleryItem is a normalized portfolio entry. Link is always non-empty and safe.
type GalleryItem struct {
	Name     string    `json:"name"`
	Desc     string    `json:"desc"`
	Link     string    `json:"link"`
	Category string    `json:"category"`
	Type     MediaType `json:"type"`
}

// Category is one entry of the category navigation
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	All   bool   `json:"all,omitempty"`
}

// KeyMapping lists, per canonical field, the source keys accepted for it in priority order
type KeyMapping struct {
	Name     []string `yaml:"name" json:"name"`
	Desc     []string `yaml:"desc" json:"desc"`
	Link     []string `yaml:"link" json:"link"`
	Category []string `yaml:"category" json:"category"`
}

// DefaultKeyMapping accepts both the English keys of data.json and the
// localized column names produced by the spreadsheet bridge.
func DefaultKeyMapping() KeyMapping {
	return KeyMapping{
		Name:     []string{"name", "title", "名稱", "標題"},
		Desc:     []string{"desc", "description", "描述", "說明"},
		Link:     []string{"link", "url", "連結", "網址"},
		Category: []string{"category", "分類", "類別"},
	}
}

// Merge returns m with every non-empty list of o replacing its counterpart
func (m KeyMapping) Merge(o KeyMapping) KeyMapping {
	if len(o.Name) > 0 {
		m.Name = o.Name
	}
	if len(o.Desc) > 0 {
		m.Desc = o.Desc
	}
	if len(o.Link) > 0 {
		m.Link = o.Link
	}
	if len(o.Category) > 0 {
		m.Category = o.Category
	}
	return m
}

package services

import (
	"encoding/json"
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"

	"portfolio-gallery/pkg/models"
)

// DropReason explains why a record was left out of the normalized result
type DropReason string

const (
	Kept          DropReason = ""
	DropEmptyLink DropReason = "empty-link"
	DropScript    DropReason = "script-scheme"
	DropDenied    DropReason = "denied-file"
)

var (
	scriptSchemeRegex = regexp.MustCompile(`(?i)^(javascript|vbscript):`)
	deniedFileRegex   = regexp.MustCompile(`(?i)(^|/)(\.gitkeep|\.keep|\.gitignore|\.ds_store|thumbs\.db|desktop\.ini)(\?.*)?$`)
	videoLinkRegex    = regexp.MustCompile(`(?i)\.(mp4|webm|ogg|ogv|mov|m4v)(\?.*)?$`)
)

// Report counts what happened to the records of one document
type Report struct {
	Total   int                `json:"total"`
	Kept    int                `json:"kept"`
	Dropped map[DropReason]int `json:"dropped"`
}

// Normalizer turns raw records into gallery items
type Normalizer struct {
	keys    models.KeyMapping
	strings models.Strings
	policy  *bluemonday.Policy
}

// NewNormalizer creates a normalizer for the given key mapping and defaults
func NewNormalizer(keys models.KeyMapping, s models.Strings) *Normalizer {
	return &Normalizer{
		keys:    keys,
		strings: s,
		policy:  bluemonday.StrictPolicy(),
	}
}

// trimLink strips spaces and C0 control characters around a link, as
// browsers do when parsing a URL
func trimLink(link string) string {
	return strings.TrimFunc(link, func(r rune) bool {
		return r <= 0x20 || unicode.IsSpace(r)
	})
}

// CheckLink reports whether a link may be shown
func CheckLink(link string) DropReason {
	link = trimLink(link)
	if link == "" {
		return DropEmptyLink
	}
	// Tab and newline characters inside a URL are ignored
	compact := strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, link)
	if scriptSchemeRegex.MatchString(compact) {
		return DropScript
	}
	if deniedFileRegex.MatchString(link) {
		return DropDenied
	}
	return Kept
}

// ClassifyLink returns the media type implied by the link's file extension
func ClassifyLink(link string) models.MediaType {
	if videoLinkRegex.MatchString(link) {
		return models.MediaVideo
	}
	return models.MediaImage
}

// Decode parses a JSON document and normalizes it. A body that cannot be
// parsed yields no items.
func (n *Normalizer) Decode(body []byte) []models.GalleryItem {
	items, _ := n.DecodeReport(body)
	return items
}

// DecodeReport is Decode with drop statistics
func (n *Normalizer) DecodeReport(body []byte) ([]models.GalleryItem, Report) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		log.Warn().Err(err).Int("bytes", len(body)).Msg("data document is not valid JSON")
		return []models.GalleryItem{}, Report{Dropped: map[DropReason]int{}}
	}
	return n.NormalizeReport(raw)
}

// Normalize converts a decoded sequence of records. Anything that is not a
// sequence is treated as empty.
func (n *Normalizer) Normalize(raw any) []models.GalleryItem {
	items, _ := n.NormalizeReport(raw)
	return items
}

// NormalizeReport is Normalize with drop statistics
func (n *Normalizer) NormalizeReport(raw any) ([]models.GalleryItem, Report) {
	records := asRecords(raw)
	report := Report{Total: len(records), Dropped: map[DropReason]int{}}
	items := make([]models.GalleryItem, 0, len(records))

	for _, record := range records {
		item, reason := n.item(record)
		if reason != Kept {
			report.Dropped[reason]++
			continue
		}
		items = append(items, item)
	}
	report.Kept = len(items)

	if raw != nil && records == nil {
		log.Warn().Msg("data document is not a list, treating as empty")
	}
	return items, report
}

func (n *Normalizer) item(record models.RawRecord) (models.GalleryItem, DropReason) {
	link := ""
	if v, ok := lookup(record, n.keys.Link).(string); ok {
		link = trimLink(v)
	}
	if reason := CheckLink(link); reason != Kept {
		return models.GalleryItem{}, reason
	}

	return models.GalleryItem{
		Name:     n.text(record, n.keys.Name, n.strings.UntitledName),
		Desc:     n.text(record, n.keys.Desc, n.strings.NoDescription),
		Link:     link,
		Category: n.text(record, n.keys.Category, n.strings.Uncategorized),
		Type:     ClassifyLink(link),
	}, Kept
}

// text reads a display field, stripped of markup, falling back to def
func (n *Normalizer) text(record models.RawRecord, keys []string, def string) string {
	var s string
	switch v := lookup(record, keys).(type) {
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return def
	}

	s = strings.TrimSpace(html.UnescapeString(n.policy.Sanitize(s)))
	if s == "" {
		return def
	}
	return s
}

// lookup returns the value of the first key present in the record
func lookup(record models.RawRecord, keys []string) any {
	for _, key := range keys {
		if v, ok := record[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func asRecords(raw any) []models.RawRecord {
	switch list := raw.(type) {
	case []any:
		records := make([]models.RawRecord, 0, len(list))
		for _, entry := range list {
			records = append(records, asRecord(entry))
		}
		return records
	case []map[string]any:
		records := make([]models.RawRecord, 0, len(list))
		for _, entry := range list {
			records = append(records, entry)
		}
		return records
	case []models.RawRecord:
		return list
	}
	return nil
}

func asRecord(entry any) models.RawRecord {
	switch r := entry.(type) {
	case map[string]any:
		return r
	case models.RawRecord:
		return r
	}
	return models.RawRecord{}
}

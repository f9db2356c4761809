package widget

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"portfolio-gallery/pkg/models"
)

// Categories returns the category navigation for items: the "all" entry,
// then every distinct category in collation order for locale, with the
// uncategorized label last.
func Categories(items []models.GalleryItem, locale string, s models.Strings) []models.Category {
	counts := make(map[string]int)
	names := make([]string, 0)
	for _, item := range items {
		// items filed under the all label are already counted by the all entry
		if item.Category == s.All {
			continue
		}
		if _, seen := counts[item.Category]; !seen {
			names = append(names, item.Category)
		}
		counts[item.Category]++
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	c := collate.New(tag, collate.IgnoreCase, collate.Numeric)

	sort.SliceStable(names, func(i, j int) bool {
		ui, uj := names[i] == s.Uncategorized, names[j] == s.Uncategorized
		if ui != uj {
			return uj
		}
		return c.CompareString(names[i], names[j]) < 0
	})

	categories := make([]models.Category, 0, len(names)+1)
	categories = append(categories, models.Category{Name: s.All, Count: len(items), All: true})
	for _, name := range names {
		categories = append(categories, models.Category{Name: name, Count: counts[name]})
	}
	return categories
}

// HasCategory reports whether any item belongs to category
func HasCategory(items []models.GalleryItem, category string) bool {
	for _, item := range items {
		if item.Category == category {
			return true
		}
	}
	return false
}

// Filter returns the indices of the items shown for category
func Filter(items []models.GalleryItem, category, all string) []int {
	indices := make([]int, 0, len(items))
	for i, item := range items {
		if category == all || item.Category == category {
			indices = append(indices, i)
		}
	}
	return indices
}

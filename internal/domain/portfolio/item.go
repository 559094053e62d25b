package portfolio

import (
	"slices"
	"strings"
	"time"

	"creative-edge/internal/domain/docfields"
	"creative-edge/internal/infra/store"
)

const Collection = "portfolioItems"

type Type string

const (
	TypeMural     Type = "mural"
	TypeCarpentry Type = "carpentry"
)

type Category string

const (
	CategoryIndoor  Category = "indoor"
	CategoryOutdoor Category = "outdoor"
)

func ParseType(s string) (Type, bool) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeMural, TypeCarpentry:
		return t, true
	}
	return "", false
}

func ParseCategory(s string) (Category, bool) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryIndoor, CategoryOutdoor:
		return c, true
	}
	return "", false
}

type Item struct {
	ID            string
	Title         string
	Type          Type
	Category      Category
	Description   string
	Tags          []string
	CoverImageURL string
	ImageURLs     []string
	Featured      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FromRecord decodes a stored document leniently: unknown enum values are
// dropped and wrong-typed fields read as empty. A cover that is not one of
// the item's images is cleared; a cover with no image list is kept so views
// can still show it.
func FromRecord(rec store.Record) (Item, error) {
	var doc map[string]any
	if err := rec.Decode(&doc); err != nil {
		return Item{}, err
	}

	it := Item{
		ID:            rec.ID,
		Title:         docfields.String(doc, "title"),
		Description:   docfields.String(doc, "description"),
		Tags:          docfields.Strings(doc, "tags"),
		CoverImageURL: docfields.String(doc, "coverImageUrl"),
		ImageURLs:     docfields.Strings(doc, "imageUrls"),
		Featured:      docfields.Bool(doc, "featured"),
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
	if t, ok := ParseType(docfields.String(doc, "type")); ok {
		it.Type = t
	}
	if c, ok := ParseCategory(docfields.String(doc, "category")); ok {
		it.Category = c
	}
	if it.CoverImageURL != "" && len(it.ImageURLs) > 0 && !slices.Contains(it.ImageURLs, it.CoverImageURL) {
		it.CoverImageURL = ""
	}
	return it, nil
}

func (it Item) DisplayTitle() string {
	if strings.TrimSpace(it.Title) == "" {
		return "Untitled"
	}
	return it.Title
}

func (it Item) TypeLabel() string {
	if it.Type == "" {
		return "project"
	}
	return string(it.Type)
}

func (it Item) CategoryLabel() string {
	if it.Category == "" {
		return "category"
	}
	return string(it.Category)
}

// ParseTags splits comma-separated input, trimming and dropping empties.
func ParseTags(text string) []string {
	tags := []string{}
	for _, t := range strings.Split(text, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// PlaceholderFields is the first write of a new item: content only, no media.
func PlaceholderFields(title string, t Type, c Category, description string, tags []string) map[string]any {
	if tags == nil {
		tags = []string{}
	}
	return map[string]any{
		"title":         strings.TrimSpace(title),
		"type":          string(t),
		"category":      string(c),
		"description":   strings.TrimSpace(description),
		"tags":          tags,
		"featured":      false,
		"coverImageUrl": "",
		"imageUrls":     []string{},
	}
}

// ImagesPatch completes a placeholder with its uploaded images. The cover is
// always taken from urls, so the cover invariant holds by construction.
func ImagesPatch(urls []string, coverIndex int) (map[string]any, bool) {
	if coverIndex < 0 || coverIndex >= len(urls) {
		return nil, false
	}
	return map[string]any{
		"imageUrls":     urls,
		"coverImageUrl": urls[coverIndex],
	}, true
}

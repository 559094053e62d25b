package portfolio

import (
	"time"

	"creative-edge/internal/domain/portfolio"
)

// ---------- responses

type CardDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TypeLabel     string    `json:"typeLabel"`
	CategoryLabel string    `json:"categoryLabel"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"createdAt"`
}

type DetailDTO struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TypeLabel     string    `json:"typeLabel"`
	CategoryLabel string    `json:"categoryLabel"`
	Description   string    `json:"description"`
	Tags          []string  `json:"tags"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	Images        []string  `json:"images"`
	Featured      bool      `json:"featured"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ListDTO struct {
	Items []CardDTO `json:"items"`
}

// ---------- admin form

type CreateResponse struct {
	OK     bool     `json:"ok"`
	ID     string   `json:"id,omitempty"`
	Status string   `json:"status"`
	Steps  []string `json:"steps"`
}

func toCardDTO(it portfolio.Item) CardDTO {
	return CardDTO{
		ID:            it.ID,
		Title:         it.DisplayTitle(),
		TypeLabel:     it.TypeLabel(),
		CategoryLabel: it.CategoryLabel(),
		CoverImageURL: it.CoverImageURL,
		Featured:      it.Featured,
		CreatedAt:     it.CreatedAt,
	}
}

// toDetailDTO shows every image, or just the cover for items saved without
// an image list.
func toDetailDTO(it portfolio.Item) DetailDTO {
	images := it.ImageURLs
	if len(images) == 0 && it.CoverImageURL != "" {
		images = []string{it.CoverImageURL}
	}
	if images == nil {
		images = []string{}
	}
	return DetailDTO{
		ID:            it.ID,
		Title:         it.DisplayTitle(),
		TypeLabel:     it.TypeLabel(),
		CategoryLabel: it.CategoryLabel(),
		Description:   it.Description,
		Tags:          it.Tags,
		CoverImageURL: it.CoverImageURL,
		Images:        images,
		Featured:      it.Featured,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

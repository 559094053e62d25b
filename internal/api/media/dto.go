package media

import (
	"time"

	"creative-edge/internal/domain/media"
)

type ItemDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Label     string    `json:"label"`
	AudioURL  string    `json:"audioUrl,omitempty"`
	YouTubeID string    `json:"youtubeId,omitempty"`
	EmbedURL  string    `json:"embedUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListDTO struct {
	Items []ItemDTO `json:"items"`
}

type CreateResponse struct {
	OK     bool     `json:"ok"`
	ID     string   `json:"id,omitempty"`
	Status string   `json:"status"`
	Steps  []string `json:"steps"`
}

func toItemDTO(it media.Item) ItemDTO {
	label := "YouTube"
	if it.Kind == media.KindAudio {
		label = "Audio"
	}
	return ItemDTO{
		ID:        it.ID,
		Title:     it.Title,
		Type:      string(it.Kind),
		Label:     label,
		AudioURL:  it.AudioURL,
		YouTubeID: it.YouTubeID,
		EmbedURL:  it.EmbedURL(),
		CreatedAt: it.CreatedAt,
	}
}

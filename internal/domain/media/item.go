package media

import (
	"regexp"
	"strings"
	"time"

	"creative-edge/internal/domain/docfields"
	"creative-edge/internal/infra/store"
)

const Collection = "mediaItems"

type Kind string

const (
	KindAudio   Kind = "audio"
	KindYouTube Kind = "youtube"
)

func ParseKind(s string) (Kind, bool) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindAudio, KindYouTube:
		return k, true
	}
	return "", false
}

type Item struct {
	ID        string
	Title     string
	Kind      Kind
	AudioURL  string
	YouTubeID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func FromRecord(rec store.Record) (Item, error) {
	var doc map[string]any
	if err := rec.Decode(&doc); err != nil {
		return Item{}, err
	}

	it := Item{
		ID:        rec.ID,
		Title:     docfields.String(doc, "title"),
		AudioURL:  docfields.String(doc, "audioUrl"),
		YouTubeID: docfields.String(doc, "youtubeId"),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if k, ok := ParseKind(docfields.String(doc, "type")); ok {
		it.Kind = k
	}
	return it, nil
}

func (it Item) EmbedURL() string {
	if it.Kind != KindYouTube || it.YouTubeID == "" {
		return ""
	}
	return "https://www.youtube.com/embed/" + it.YouTubeID
}

var (
	watchParam = regexp.MustCompile(`[?&]v=([^&]+)`)
	shortLink  = regexp.MustCompile(`youtu\.be/([^?&]+)`)
)

// ExtractYouTubeID accepts a watch URL (v= parameter), a youtu.be short link,
// or a bare id, and returns the video id. Input matching neither URL form is
// returned trimmed, as-is.
func ExtractYouTubeID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if m := watchParam.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	if m := shortLink.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return raw
}

func AudioPlaceholderFields(title string) map[string]any {
	return map[string]any{
		"type":     string(KindAudio),
		"title":    strings.TrimSpace(title),
		"audioUrl": "",
	}
}

func AudioPatch(url string) map[string]any {
	return map[string]any{"audioUrl": url}
}

func YouTubeFields(title, youtubeID string) map[string]any {
	return map[string]any{
		"type":      string(KindYouTube),
		"title":     strings.TrimSpace(title),
		"youtubeId": youtubeID,
	}
}

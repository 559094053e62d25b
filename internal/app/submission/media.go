package submission

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"creative-edge/internal/domain/media"
	"creative-edge/internal/infra/objectstore"
)

const (
	MsgNoAudio        = "Please choose an audio file first."
	MsgNoYouTube      = "Please paste a YouTube URL or ID."
	MsgUploadingAudio = "Uploading audio…"
	MsgYouTubeDone    = "YouTube media item created!"
	MsgAudioDone      = "Audio media item created!"
)

type MediaForm struct {
	Kind           media.Kind
	Title          string
	Audio          *File
	YouTubeURLOrID string
}

// SubmitMedia creates a media item. YouTube items are written in one step;
// audio items go through placeholder, upload and patch like portfolio items.
func (f *Flow) SubmitMedia(ctx context.Context, form MediaForm, progress Progress) (string, error) {
	if form.Kind == media.KindYouTube {
		return f.submitYouTube(ctx, form, progress)
	}

	if form.Audio == nil {
		return "", invalid(MsgNoAudio)
	}
	if strings.TrimSpace(form.Title) == "" {
		return "", invalid(MsgTitleRequired)
	}

	id, err := f.records.Create(ctx, media.Collection, media.AudioPlaceholderFields(form.Title))
	if err != nil {
		return "", err
	}

	report(progress, MsgUploadingAudio)
	url, err := f.upload(ctx, *form.Audio, objectstore.MediaPath(id, f.now(), form.Audio.Name))
	if err != nil {
		f.log.Warn("audio upload failed, placeholder left in place", zap.String("item_id", id), zap.Error(err))
		return id, err
	}

	if err := f.records.Update(ctx, media.Collection, id, media.AudioPatch(url), f.now()); err != nil {
		return id, err
	}

	report(progress, MsgAudioDone)
	f.log.Info("audio media item created", zap.String("item_id", id))
	return id, nil
}

func (f *Flow) submitYouTube(ctx context.Context, form MediaForm, progress Progress) (string, error) {
	if strings.TrimSpace(form.Title) == "" {
		return "", invalid(MsgTitleRequired)
	}
	youtubeID := media.ExtractYouTubeID(form.YouTubeURLOrID)
	if youtubeID == "" {
		return "", invalid(MsgNoYouTube)
	}

	id, err := f.records.Create(ctx, media.Collection, media.YouTubeFields(form.Title, youtubeID))
	if err != nil {
		return "", err
	}

	report(progress, MsgYouTubeDone)
	f.log.Info("youtube media item created", zap.String("item_id", id), zap.String("youtube_id", youtubeID))
	return id, nil
}

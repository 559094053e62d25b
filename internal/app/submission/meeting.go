package submission

import (
	"context"
	"fmt"

	"creative-edge/internal/domain/meetings"
	"creative-edge/internal/infra/objectstore"
)

const (
	MsgFillRequired   = "Please fill out all required fields."
	MsgUploadingPhoto = "Uploading photo…"
	MsgSending        = "Sending request…"
	MsgMeetingDone    = "Request sent! We'll reach out soon."
)

// SubmitMeeting checks the request and the optional photo locally, uploads
// the photo and hands the request to the notifier.
func (f *Flow) SubmitMeeting(ctx context.Context, req meetings.Request, photo *File, progress Progress) error {
	if req.MissingRequired() {
		return invalid(MsgFillRequired)
	}
	if meetings.CommentsTooLong(req.Comments) {
		return invalid(meetings.MsgCommentsLong)
	}

	req.PhotoURL = ""
	if photo != nil {
		if photo.Size > int64(f.maxPhotoMB)*1024*1024 {
			return invalid(fmt.Sprintf("Photo must be under %dMB.", f.maxPhotoMB))
		}

		report(progress, MsgUploadingPhoto)
		url, err := f.upload(ctx, *photo, objectstore.MeetingPhotoPath(f.now(), photo.Name))
		if err != nil {
			return err
		}
		req.PhotoURL = url
	}

	report(progress, MsgSending)
	if err := f.notifier.Notify(ctx, req); err != nil {
		return err
	}

	report(progress, MsgMeetingDone)
	return nil
}

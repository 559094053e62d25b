package submission

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"creative-edge/internal/domain/meetings"
	"creative-edge/internal/infra/objectstore"
)

// Progress receives a human-readable status line at every phase.
type Progress func(status string)

// File is one uploaded form file.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

type RecordWriter interface {
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	Update(ctx context.Context, collection, id string, fields map[string]any, updatedAt time.Time) error
}

type MeetingNotifier interface {
	Notify(ctx context.Context, r meetings.Request) error
}

// ValidationError is a form problem found before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// Flow runs the create, upload, patch pipeline behind the site's forms.
// Nothing is rolled back: a record created before a failing upload stays.
type Flow struct {
	records    RecordWriter
	uploads    objectstore.Uploader
	notifier   MeetingNotifier
	maxPhotoMB int
	now        func() time.Time
	log        *zap.Logger
}

type Options struct {
	MaxPhotoMB int
	Logger     *zap.Logger
	Now        func() time.Time
}

func NewFlow(records RecordWriter, uploads objectstore.Uploader, notifier MeetingNotifier, opts Options) *Flow {
	f := &Flow{
		records:    records,
		uploads:    uploads,
		notifier:   notifier,
		maxPhotoMB: opts.MaxPhotoMB,
		now:        opts.Now,
		log:        opts.Logger,
	}
	if f.maxPhotoMB <= 0 {
		f.maxPhotoMB = 5
	}
	if f.now == nil {
		f.now = time.Now
	}
	if f.log == nil {
		f.log = zap.NewNop()
	}
	return f
}

func (f *Flow) upload(ctx context.Context, file File, path string) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	return f.uploads.Upload(ctx, rc, path, file.ContentType)
}

func report(p Progress, status string) {
	if p != nil {
		p(status)
	}
}

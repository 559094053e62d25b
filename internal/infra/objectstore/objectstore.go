package objectstore

import (
	"context"
	"fmt"
	"io"
)

// Uploader puts a blob at path and returns a URL it can be fetched from.
// Implementations do no size or type checks and no dedup; callers own those.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, path, contentType string) (string, error)
}

type Config struct {
	Driver    string // local | s3
	LocalPath string
	PublicURL string

	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

func New(cfg Config) (Uploader, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocal(cfg.LocalPath, cfg.PublicURL)
	case "s3":
		return NewS3(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}

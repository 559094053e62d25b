package objectstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local writes blobs under a directory that the HTTP server exposes at
// publicURL. Meant for development.
type Local struct {
	root      string
	publicURL string
}

func NewLocal(root, publicURL string) (*Local, error) {
	if root == "" {
		root = "./uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Local{root: root, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

func (l *Local) Root() string {
	return l.root
}

func (l *Local) Upload(ctx context.Context, r io.Reader, path, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	clean := filepath.Clean("/" + path)
	full := filepath.Join(l.root, clean)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(full)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(full)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return l.publicURL + "/" + escapePath(strings.TrimPrefix(filepath.ToSlash(clean), "/")), nil
}

// Package images copies category thumbnails into the app-local image area.
package images

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Dir is an app-local directory holding category images.
type Dir struct {
	path string
	now  func() time.Time
}

// NewDir ensures the directory exists and returns it.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &Dir{path: path, now: time.Now}, nil
}

// Save copies a picked image into the directory under a generated
// img_<epoch-millis>.jpg name and returns the resulting local path. The
// catalog stores only this path.
func (d *Dir) Save(src io.Reader) (string, error) {
	name := fmt.Sprintf("img_%d.jpg", d.now().UnixMilli())
	path := filepath.Join(d.path, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close image file: %w", err)
	}

	return path, nil
}

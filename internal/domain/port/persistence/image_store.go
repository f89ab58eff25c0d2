package persistence

import (
	"context"
	"io"
)

// ImageStore keeps uploaded profile images
type ImageStore interface {
	// Save writes content under name, replacing any file with the same name
	Save(ctx context.Context, name string, content io.Reader) error

	// Remove deletes a stored file; a missing file is not an error
	Remove(ctx context.Context, name string) error
}

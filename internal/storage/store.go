package storage

import (
	"context"
	"io"
)

// Store defines the interface for the export target.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// List returns the slash-separated paths of all files under dir. A
	// missing dir has no files.
	List(ctx context.Context, dir string) ([]string, error)
	Remove(ctx context.Context, path string) error
}

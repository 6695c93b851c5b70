package storage

import (
	"context"
	"io"
)

// Reader opens stored documents, such as schema files.
type Reader interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// Store adds writing, used by schema export.
type Store interface {
	Reader
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
}

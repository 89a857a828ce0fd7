package interfaces

import (
	"context"
	"io"
)

// IObjectStorage stores blobs under a key and exposes them by public URL.
type IObjectStorage interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader) (publicURL string, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

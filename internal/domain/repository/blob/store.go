package blob

import (
	"context"
	"io"

	"emogo/internal/domain/entity"
)

// Store persists uploaded byte streams under allocated names.
//
// Put streams the reader to durable storage with bounded working memory and
// only returns once the full byte count is flushed; on any failure the
// partial blob is removed before the error surfaces, so no truncated blob is
// ever addressable. Open returns domain.ErrBlobNotFound for unknown names.
type Store interface {
	Put(ctx context.Context, name string, r io.Reader) (entity.PutResult, error)
	Open(ctx context.Context, name string) (io.ReadCloser, entity.BlobInfo, error)
	Remove(ctx context.Context, name string) error
	RemoveAll(ctx context.Context) (int64, error)
}

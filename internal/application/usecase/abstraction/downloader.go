package abstraction

import (
	"context"
	"io"

	"emogo/internal/domain/entity"
)

// Downloader serves stored video blobs back by name.
type Downloader interface {
	OpenVideo(ctx context.Context, filename string) (io.ReadCloser, entity.BlobInfo, error)
}

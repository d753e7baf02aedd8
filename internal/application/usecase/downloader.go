package usecase

import (
	"context"
	"io"

	"emogo/internal/domain"
	"emogo/internal/domain/entity"
	"emogo/internal/domain/media"
	"emogo/internal/domain/repository/blob"
)

// Downloader serves stored videos. Names that could not have come from the
// allocator are rejected up front, so the blob store never sees a path that
// escapes the media directory.
type Downloader struct {
	blobs blob.Store
}

func NewDownloader(blobs blob.Store) *Downloader {
	return &Downloader{blobs: blobs}
}

func (d *Downloader) OpenVideo(ctx context.Context, filename string) (io.ReadCloser, entity.BlobInfo, error) {
	if !media.ValidStoredName(filename) {
		return nil, entity.BlobInfo{}, domain.ErrBlobNotFound
	}

	return d.blobs.Open(ctx, filename)
}

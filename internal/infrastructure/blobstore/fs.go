// Package blobstore persists uploaded media on the local filesystem, one
// flat directory addressed by allocated name only.
package blobstore

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"emogo/internal/domain"
	"emogo/internal/domain/entity"
	"emogo/pkg/logger"
	"emogo/pkg/utils"
)

const copyBufferSize = 1 * 1024 * 1024

type FS struct {
	dir string
}

// NewFS creates the media directory if it does not yet exist. Failure here
// is a boot failure, not a per-request error.
func NewFS(cfg Config) (*FS, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	return &FS{dir: cfg.Dir}, nil
}

// Put streams r into the store under name. The stream goes through a
// fixed-size buffer, so working memory stays bounded regardless of file
// size. The bytes land in a temporary file first and are fsynced before the
// rename to the final name, so a successful return means the full byte count
// is durable and a failed attempt leaves nothing addressable.
func (s *FS) Put(ctx context.Context, name string, r io.Reader) (entity.PutResult, error) {
	tmpPath := filepath.Join(s.dir, name+".part")

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return entity.PutResult{}, domain.StorageError{Op: "put", Err: err}
	}

	size, contentType, err := s.copyAndSniff(ctx, file, r, name)
	if err != nil {
		s.discard(file, tmpPath)

		return entity.PutResult{}, domain.StorageError{Op: "put", Err: err}
	}

	if err := file.Sync(); err != nil {
		s.discard(file, tmpPath)

		return entity.PutResult{}, domain.StorageError{Op: "put", Err: err}
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmpPath)

		return entity.PutResult{}, domain.StorageError{Op: "put", Err: err}
	}

	if err := os.Rename(tmpPath, filepath.Join(s.dir, name)); err != nil {
		_ = os.Remove(tmpPath)

		return entity.PutResult{}, domain.StorageError{Op: "put", Err: err}
	}

	return entity.PutResult{Size: size, ContentType: contentType}, nil
}

// copyAndSniff copies r to w in bounded chunks, detecting the content type
// from the leading chunk. Context cancellation (client disconnect) aborts
// the copy and is treated like any other write failure.
func (s *FS) copyAndSniff(ctx context.Context, w io.Writer, r io.Reader, name string) (int64, string, error) {
	buf := make([]byte, copyBufferSize)
	contentType := ""

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return 0, "", err
		}

		n, readErr := r.Read(buf)
		if n > 0 {
			if contentType == "" {
				contentType = mimetype.Detect(buf[:n]).String()
			}

			if _, err := w.Write(buf[:n]); err != nil {
				return 0, "", err
			}
			total += int64(n)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return 0, "", readErr
		}
	}

	if contentType == "" {
		contentType = utils.GetMimeTypeFromExtension(name)
	}

	return total, contentType, nil
}

func (s *FS) discard(file *os.File, path string) {
	if err := file.Close(); err != nil {
		logger.Warn("failed to close partial blob", "path", path, "err", err)
	}
	if err := os.Remove(path); err != nil {
		logger.Warn("failed to remove partial blob", "path", path, "err", err)
	}
}

// Open returns a stream over a stored blob. Unknown names yield
// domain.ErrBlobNotFound rather than an empty stream.
func (s *FS) Open(_ context.Context, name string) (io.ReadCloser, entity.BlobInfo, error) {
	path := filepath.Join(s.dir, name)

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, entity.BlobInfo{}, domain.ErrBlobNotFound
		}

		return nil, entity.BlobInfo{}, domain.StorageError{Op: "open", Err: err}
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()

		return nil, entity.BlobInfo{}, domain.StorageError{Op: "open", Err: err}
	}

	return file, entity.BlobInfo{
		Size:        stat.Size(),
		ContentType: utils.GetMimeTypeFromExtension(name),
	}, nil
}

func (s *FS) Remove(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ErrBlobNotFound
	}
	if err != nil {
		return domain.StorageError{Op: "remove", Err: err}
	}

	return nil
}

// RemoveAll deletes every stored blob and returns the removed count.
// Seeding tooling only.
func (s *FS) RemoveAll(_ context.Context) (int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, domain.StorageError{Op: "remove_all", Err: err}
	}

	var removed int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return removed, domain.StorageError{Op: "remove_all", Err: err}
		}
		removed++
	}

	return removed, nil
}

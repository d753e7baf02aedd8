package minio

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"

	"emogo/internal/domain"
	"emogo/internal/domain/entity"
	"emogo/pkg/logger"
	"emogo/pkg/utils"
)

// partSize bounds the per-upload working memory for streams of unknown
// length.
const partSize = 16 * 1024 * 1024

const sniffSize = 512

type Store struct {
	minioClient *minio.Client
	cfg         *StoreConfig
}

func NewStore(minioClient *minio.Client, cfg *StoreConfig) *Store {
	return &Store{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *Store) Put(ctx context.Context, name string, r io.Reader) (entity.PutResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	head := make([]byte, sniffSize)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return entity.PutResult{}, domain.StorageError{Op: "put", Err: err}
	}

	contentType := utils.GetMimeTypeFromExtension(name)
	if n > 0 {
		contentType = mimetype.Detect(head[:n]).String()
	}

	body := io.MultiReader(bytes.NewReader(head[:n]), r)

	info, err := s.minioClient.PutObject(ctx, s.cfg.Bucket, name, body, -1, minio.PutObjectOptions{
		ContentType: contentType,
		PartSize:    partSize,
	})
	if err != nil {
		// PutObject aborts incomplete multipart uploads itself, but remove
		// defensively in case the object landed before the failure.
		if rmErr := s.minioClient.RemoveObject(ctx, s.cfg.Bucket, name, minio.RemoveObjectOptions{}); rmErr != nil {
			logger.Warn("failed to remove object after failed put", "name", name, "err", rmErr)
		}

		return entity.PutResult{}, domain.StorageError{Op: "put", Err: err}
	}

	return entity.PutResult{Size: info.Size, ContentType: contentType}, nil
}

func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, entity.BlobInfo, error) {
	obj, err := s.minioClient.GetObject(ctx, s.cfg.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, entity.BlobInfo{}, domain.StorageError{Op: "open", Err: err}
	}

	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()

		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, entity.BlobInfo{}, domain.ErrBlobNotFound
		}

		return nil, entity.BlobInfo{}, domain.StorageError{Op: "open", Err: err}
	}

	contentType := stat.ContentType
	if contentType == "" {
		contentType = utils.GetMimeTypeFromExtension(name)
	}

	return obj, entity.BlobInfo{Size: stat.Size, ContentType: contentType}, nil
}

func (s *Store) Remove(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	if _, err := s.minioClient.StatObject(ctx, s.cfg.Bucket, name, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return domain.ErrBlobNotFound
		}

		return domain.StorageError{Op: "remove", Err: err}
	}

	if err := s.minioClient.RemoveObject(ctx, s.cfg.Bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return domain.StorageError{Op: "remove", Err: err}
	}

	return nil
}

func (s *Store) RemoveAll(ctx context.Context) (int64, error) {
	var removed int64
	for obj := range s.minioClient.ListObjects(ctx, s.cfg.Bucket, minio.ListObjectsOptions{}) {
		if obj.Err != nil {
			return removed, domain.StorageError{Op: "remove_all", Err: obj.Err}
		}
		if err := s.minioClient.RemoveObject(ctx, s.cfg.Bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return removed, domain.StorageError{Op: "remove_all", Err: err}
		}
		removed++
	}

	return removed, nil
}

package usecase

import (
	"context"
	"time"

	"emogo/internal/domain"
	"emogo/internal/domain/dto"
	"emogo/internal/domain/entity"
	"emogo/internal/domain/media"
	"emogo/internal/domain/model"
	"emogo/internal/domain/repository/blob"
	"emogo/internal/domain/repository/broker"
	"emogo/internal/domain/repository/database"
	"emogo/pkg/logger"
)

// Record kinds as published on the event stream.
const (
	KindVlog      = "vlog"
	KindSentiment = "sentiment"
	KindGPS       = "gps"
)

const (
	videoURLPrefix    = "/uploads/videos/"
	downloadURLPrefix = "/api/vlogs/download/"
)

// Ingestor runs each record through validate -> (blob persist) -> document
// write as one logical transition: if any step fails, no record exists and
// any blob written during the attempt is discarded.
type Ingestor struct {
	writer    database.Writer
	blobs     blob.Store
	publisher broker.Publisher
}

// NewIngestor wires the ingestion pipeline. publisher may be nil when no
// broker is configured; events are then skipped.
func NewIngestor(writer database.Writer, blobs blob.Store, publisher broker.Publisher) *Ingestor {
	return &Ingestor{
		writer:    writer,
		blobs:     blobs,
		publisher: publisher,
	}
}

func (i *Ingestor) IngestVlog(ctx context.Context, vlog *model.Vlog) (string, error) {
	if err := vlog.Validate(); err != nil {
		return "", err
	}

	// Upload-derived fields only exist for blobs that went through
	// IngestVlogUpload; a JSON create carries none of them.
	vlog.DownloadURL = ""
	vlog.OriginalFilename = ""
	vlog.FileSize = nil

	vlog.Normalize(time.Now())

	id, err := i.writer.CreateVlog(ctx, vlog)
	if err != nil {
		return "", err
	}

	i.announce(ctx, KindVlog, id)

	return id, nil
}

// IngestVlogUpload streams an uploaded video into the blob store, then
// writes the vlog document referencing it. Owner validation happens before
// any disk I/O; if the document write fails, the just-written blob is
// removed so no orphan remains addressable.
func (i *Ingestor) IngestVlogUpload(ctx context.Context, upload entity.VlogUpload) (dto.VlogUploadResult, error) {
	if upload.UserID == "" {
		return dto.VlogUploadResult{}, domain.NewValidationError("user_id", "required")
	}

	name, err := media.AllocateName(upload.Filename)
	if err != nil {
		return dto.VlogUploadResult{}, err
	}

	putResult, err := i.blobs.Put(ctx, name, upload.File)
	if err != nil {
		return dto.VlogUploadResult{}, err
	}

	size := putResult.Size
	vlog := &model.Vlog{
		UserID:           upload.UserID,
		VideoURL:         videoURLPrefix + name,
		DownloadURL:      downloadURLPrefix + name,
		OriginalFilename: upload.Filename,
		FileSize:         &size,
		Title:            upload.Title,
		Description:      upload.Description,
	}
	vlog.Normalize(time.Now())

	id, err := i.writer.CreateVlog(ctx, vlog)
	if err != nil {
		if rmErr := i.blobs.Remove(ctx, name); rmErr != nil {
			logger.Error("failed to remove blob after document write failed", "name", name, "err", rmErr)
		}

		return dto.VlogUploadResult{}, err
	}

	i.announce(ctx, KindVlog, id)

	return dto.VlogUploadResult{
		Message:     "Vlog uploaded successfully",
		ID:          id,
		VideoURL:    vlog.VideoURL,
		DownloadURL: vlog.DownloadURL,
		FileSize:    putResult.Size,
	}, nil
}

func (i *Ingestor) IngestSentiment(ctx context.Context, sentiment *model.Sentiment) (string, error) {
	if err := sentiment.Validate(); err != nil {
		return "", err
	}
	sentiment.Normalize(time.Now())

	id, err := i.writer.CreateSentiment(ctx, sentiment)
	if err != nil {
		return "", err
	}

	i.announce(ctx, KindSentiment, id)

	return id, nil
}

func (i *Ingestor) IngestGPS(ctx context.Context, gps *model.GPSCoordinate) (string, error) {
	if err := gps.Validate(); err != nil {
		return "", err
	}
	gps.Normalize(time.Now())

	id, err := i.writer.CreateGPS(ctx, gps)
	if err != nil {
		return "", err
	}

	i.announce(ctx, KindGPS, id)

	return id, nil
}

// announce is best-effort: the record is already durable, so a broker
// failure is logged and never surfaced to the caller.
func (i *Ingestor) announce(ctx context.Context, kind, id string) {
	if i.publisher == nil {
		return
	}

	if err := i.publisher.Publish(ctx, kind, id); err != nil {
		logger.Error("failed to publish record-created event", "kind", kind, "id", id, "err", err)
	}
}

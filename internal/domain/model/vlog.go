package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"emogo/internal/domain"
)

// Vlog is a video log entry. The video either lives at an external URL
// (reference ingest) or was uploaded to the blob store, in which case
// DownloadURL, OriginalFilename and FileSize are populated too.
type Vlog struct {
	ID               primitive.ObjectID `json:"_id,omitempty"`
	UserID           string             `json:"user_id"`
	VideoURL         string             `json:"video_url"`
	DownloadURL      string             `json:"download_url,omitempty"`
	OriginalFilename string             `json:"original_filename,omitempty"`
	FileSize         *int64             `json:"file_size,omitempty"`
	Title            *string            `json:"title"`
	Description      *string            `json:"description"`
	Duration         *float64           `json:"duration"`
	Timestamp        time.Time          `json:"timestamp"`
}

func (v *Vlog) Validate() error {
	if v.UserID == "" {
		return domain.NewValidationError("user_id", "required")
	}
	if v.VideoURL == "" {
		return domain.NewValidationError("video_url", "required")
	}
	if v.Duration != nil && *v.Duration < 0 {
		return domain.NewValidationError("duration", "must not be negative")
	}

	return nil
}

// Normalize fills server-assigned defaults. It is the only place defaults
// are injected; the storage layer never sees a record without a timestamp.
// The id is server-assigned at insert time, so any client-supplied value is
// dropped here.
func (v *Vlog) Normalize(now time.Time) {
	v.ID = primitive.ObjectID{}

	if v.Timestamp.IsZero() {
		v.Timestamp = now.UTC()
	} else {
		v.Timestamp = v.Timestamp.UTC()
	}
}

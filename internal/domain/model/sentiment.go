package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"emogo/internal/domain"
)

// Sentiment is a single emotion sample on a 0-1 intensity scale.
type Sentiment struct {
	ID        primitive.ObjectID `json:"_id,omitempty"`
	UserID    string             `json:"user_id"`
	Emotion   string             `json:"emotion"`
	Intensity *float64           `json:"intensity"`
	Note      *string            `json:"note"`
	Context   *string            `json:"context"`
	Timestamp time.Time          `json:"timestamp"`
}

func (s *Sentiment) Validate() error {
	if s.UserID == "" {
		return domain.NewValidationError("user_id", "required")
	}
	if s.Emotion == "" {
		return domain.NewValidationError("emotion", "required")
	}
	if s.Intensity == nil {
		return domain.NewValidationError("intensity", "required")
	}
	if *s.Intensity < 0.0 || *s.Intensity > 1.0 {
		return domain.NewValidationError("intensity", "must be within [0.0, 1.0]")
	}

	return nil
}

func (s *Sentiment) Normalize(now time.Time) {
	s.ID = primitive.ObjectID{}

	if s.Timestamp.IsZero() {
		s.Timestamp = now.UTC()
	} else {
		s.Timestamp = s.Timestamp.UTC()
	}
}

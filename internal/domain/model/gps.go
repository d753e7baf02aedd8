package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"emogo/internal/domain"
)

// GPSCoordinate is a single location sample.
type GPSCoordinate struct {
	ID           primitive.ObjectID `json:"_id,omitempty"`
	UserID       string             `json:"user_id"`
	Latitude     *float64           `json:"latitude"`
	Longitude    *float64           `json:"longitude"`
	Altitude     *float64           `json:"altitude"`     // meters
	Accuracy     *float64           `json:"accuracy"`     // meters
	LocationName *string            `json:"location_name"`
	Timestamp    time.Time          `json:"timestamp"`
}

func (g *GPSCoordinate) Validate() error {
	if g.UserID == "" {
		return domain.NewValidationError("user_id", "required")
	}
	if g.Latitude == nil {
		return domain.NewValidationError("latitude", "required")
	}
	if *g.Latitude < -90.0 || *g.Latitude > 90.0 {
		return domain.NewValidationError("latitude", "must be within [-90.0, 90.0]")
	}
	if g.Longitude == nil {
		return domain.NewValidationError("longitude", "required")
	}
	if *g.Longitude < -180.0 || *g.Longitude > 180.0 {
		return domain.NewValidationError("longitude", "must be within [-180.0, 180.0]")
	}

	return nil
}

func (g *GPSCoordinate) Normalize(now time.Time) {
	g.ID = primitive.ObjectID{}

	if g.Timestamp.IsZero() {
		g.Timestamp = now.UTC()
	} else {
		g.Timestamp = g.Timestamp.UTC()
	}
}

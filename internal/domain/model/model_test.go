package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"emogo/internal/domain"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestVlogValidate(t *testing.T) {
	t.Parallel()

	base := Vlog{
		UserID:   "user123",
		VideoURL: "https://example.com/video.mp4",
	}

	tests := []struct {
		name        string
		modify      func(v *Vlog)
		wantField   string
		expectError bool
	}{
		{
			name:   "valid vlog",
			modify: func(_ *Vlog) {},
		},
		{
			name:        "missing user id",
			modify:      func(v *Vlog) { v.UserID = "" },
			wantField:   "user_id",
			expectError: true,
		},
		{
			name:        "missing video url",
			modify:      func(v *Vlog) { v.VideoURL = "" },
			wantField:   "video_url",
			expectError: true,
		},
		{
			name:        "negative duration",
			modify:      func(v *Vlog) { v.Duration = floatPtr(-1) },
			wantField:   "duration",
			expectError: true,
		},
		{
			name:   "zero duration",
			modify: func(v *Vlog) { v.Duration = floatPtr(0) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			vlog := base
			tt.modify(&vlog)

			err := vlog.Validate()
			if !tt.expectError {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)

			var validationErr domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestSentimentValidateIntensityBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		intensity   *float64
		expectError bool
	}{
		{name: "lower bound accepted", intensity: floatPtr(0.0)},
		{name: "upper bound accepted", intensity: floatPtr(1.0)},
		{name: "mid range accepted", intensity: floatPtr(0.8)},
		{name: "below range rejected", intensity: floatPtr(-0.01), expectError: true},
		{name: "above range rejected", intensity: floatPtr(1.01), expectError: true},
		{name: "missing rejected", intensity: nil, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sentiment := Sentiment{
				UserID:    "u1",
				Emotion:   "happy",
				Intensity: tt.intensity,
			}

			err := sentiment.Validate()
			if tt.expectError {
				var validationErr domain.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "intensity", validationErr.Field)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSentimentValidateRequiredFields(t *testing.T) {
	t.Parallel()

	sentiment := Sentiment{Emotion: "happy", Intensity: floatPtr(0.5)}
	require.Error(t, sentiment.Validate())

	sentiment = Sentiment{UserID: "u1", Intensity: floatPtr(0.5)}
	require.Error(t, sentiment.Validate())
}

func TestGPSValidateCoordinateBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		lat, lon    *float64
		wantField   string
		expectError bool
	}{
		{name: "valid coordinates", lat: floatPtr(25.0330), lon: floatPtr(121.5654)},
		{name: "lat north pole accepted", lat: floatPtr(90), lon: floatPtr(0)},
		{name: "lat south pole accepted", lat: floatPtr(-90), lon: floatPtr(0)},
		{name: "lon date line accepted", lat: floatPtr(0), lon: floatPtr(180)},
		{name: "lon negative date line accepted", lat: floatPtr(0), lon: floatPtr(-180)},
		{name: "lat too big", lat: floatPtr(90.5), lon: floatPtr(0), wantField: "latitude", expectError: true},
		{name: "lat too small", lat: floatPtr(-90.5), lon: floatPtr(0), wantField: "latitude", expectError: true},
		{name: "lon too big", lat: floatPtr(0), lon: floatPtr(180.5), wantField: "longitude", expectError: true},
		{name: "lon too small", lat: floatPtr(0), lon: floatPtr(-180.5), wantField: "longitude", expectError: true},
		{name: "lat missing", lat: nil, lon: floatPtr(0), wantField: "latitude", expectError: true},
		{name: "lon missing", lat: floatPtr(0), lon: nil, wantField: "longitude", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gps := GPSCoordinate{
				UserID:    "u1",
				Latitude:  tt.lat,
				Longitude: tt.lon,
			}

			err := gps.Validate()
			if tt.expectError {
				var validationErr domain.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, tt.wantField, validationErr.Field)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNormalizeAssignsTimestamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	vlog := Vlog{UserID: "u1", VideoURL: "https://example.com/v.mp4"}
	vlog.Normalize(now)
	require.Equal(t, now, vlog.Timestamp)

	// A caller-supplied timestamp survives, converted to UTC.
	given := time.Date(2025, 5, 1, 8, 0, 0, 0, time.FixedZone("CST", 8*3600))
	sentiment := Sentiment{UserID: "u1", Emotion: "calm", Intensity: floatPtr(0.2), Timestamp: given}
	sentiment.Normalize(now)
	require.Equal(t, given.UTC(), sentiment.Timestamp)
	require.Equal(t, time.UTC, sentiment.Timestamp.Location())
}

// A client-supplied _id must never survive into the store; the id is
// assigned by the insert.
func TestNormalizeDropsClientAssignedID(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	forged := primitive.NewObjectID()

	vlog := Vlog{ID: forged, UserID: "u1", VideoURL: "https://example.com/v.mp4"}
	vlog.Normalize(now)
	require.True(t, vlog.ID.IsZero())

	sentiment := Sentiment{ID: forged, UserID: "u1", Emotion: "calm", Intensity: floatPtr(0.2)}
	sentiment.Normalize(now)
	require.True(t, sentiment.ID.IsZero())

	gps := GPSCoordinate{ID: forged, UserID: "u1", Latitude: floatPtr(0), Longitude: floatPtr(0)}
	gps.Normalize(now)
	require.True(t, gps.ID.IsZero())
}

package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emogo/internal/domain/model"
)

func TestListByUser(t *testing.T) {
	t.Parallel()
	db := connectTestDB(t, setupMongo(t))

	writer := NewRecordWriter(db)
	lister := NewRecordLister(db)
	ctx := context.Background()

	now := time.Now().UTC()

	seed := []model.GPSCoordinate{
		{UserID: "alice", Latitude: ptrFloat(1), Longitude: ptrFloat(1), Timestamp: now},
		{UserID: "alice", Latitude: ptrFloat(2), Longitude: ptrFloat(2), Timestamp: now},
		{UserID: "bob", Latitude: ptrFloat(3), Longitude: ptrFloat(3), Timestamp: now},
		{UserID: "Alice", Latitude: ptrFloat(4), Longitude: ptrFloat(4), Timestamp: now},
	}
	for i := range seed {
		_, err := writer.CreateGPS(ctx, &seed[i])
		require.NoError(t, err)
	}

	tests := []struct {
		name          string
		userID        string
		limit         int64
		expectedCount int
	}{
		{
			name:          "exact match on owner",
			userID:        "alice",
			limit:         0,
			expectedCount: 2,
		},
		{
			name:          "owner match is case sensitive",
			userID:        "Alice",
			limit:         0,
			expectedCount: 1,
		},
		{
			name:          "no owner filter returns everything",
			userID:        "",
			limit:         0,
			expectedCount: 4,
		},
		{
			name:          "limit caps the result",
			userID:        "",
			limit:         3,
			expectedCount: 3,
		},
		{
			name:          "unknown owner yields empty list",
			userID:        "nobody",
			limit:         0,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lister.GPSCoordinates(ctx, tt.userID, tt.limit)
			require.NoError(t, err)
			assert.Len(t, got, tt.expectedCount)

			// Empty results must still be a non-nil slice so the JSON
			// encoding is [] rather than null.
			require.NotNil(t, got)

			for _, record := range got {
				if tt.userID != "" {
					assert.Equal(t, tt.userID, record.UserID)
				}
			}
		})
	}
}

func TestListDefaultLimit(t *testing.T) {
	t.Parallel()
	db := connectTestDB(t, setupMongo(t))

	writer := NewRecordWriter(db)
	lister := NewRecordLister(db)
	ctx := context.Background()

	for i := 0; i < DefaultListLimit+20; i++ {
		sentiment := model.Sentiment{
			UserID:    "bulk",
			Emotion:   fmt.Sprintf("emotion-%d", i),
			Intensity: ptrFloat(0.5),
			Timestamp: time.Now().UTC(),
		}
		_, err := writer.CreateSentiment(ctx, &sentiment)
		require.NoError(t, err)
	}

	got, err := lister.Sentiments(ctx, "bulk", 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultListLimit)
}

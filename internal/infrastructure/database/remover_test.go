package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"emogo/internal/domain/model"
)

func TestCountAndClear(t *testing.T) {
	t.Parallel()
	db := connectTestDB(t, setupMongo(t))

	writer := NewRecordWriter(db)
	counter := NewRecordCounter(db)
	remover := NewRecordRemover(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		vlog := model.Vlog{
			UserID:    "user1",
			VideoURL:  "https://example.com/v.mp4",
			Timestamp: time.Now().UTC(),
		}
		_, err := writer.CreateVlog(ctx, &vlog)
		require.NoError(t, err)
	}

	count, err := counter.Count(ctx, VlogCollection)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	// Other collections stay untouched.
	count, err = counter.Count(ctx, SentimentCollection)
	require.NoError(t, err)
	require.Zero(t, count)

	removed, err := remover.Clear(ctx, VlogCollection)
	require.NoError(t, err)
	require.Equal(t, int64(3), removed)

	count, err = counter.Count(ctx, VlogCollection)
	require.NoError(t, err)
	require.Zero(t, count)

	require.NoError(t, counter.Ping(ctx))
}

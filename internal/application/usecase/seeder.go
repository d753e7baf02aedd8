package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"emogo/internal/domain/model"
	"emogo/internal/domain/repository/blob"
	"emogo/internal/domain/repository/database"
	"emogo/pkg/logger"
)

// Seeder populates the store with synthetic records for demos. Not part of
// the public API surface.
type Seeder struct {
	writer  database.Writer
	remover database.Remover
	blobs   blob.Store
}

func NewSeeder(writer database.Writer, remover database.Remover, blobs blob.Store) *Seeder {
	return &Seeder{
		writer:  writer,
		remover: remover,
		blobs:   blobs,
	}
}

var (
	sampleUsers = []string{
		"user001", "user002", "user003", "alice_chen", "bob_wang", "charlie_lin",
	}

	sampleEmotions = []string{
		"happy", "sad", "excited", "calm", "anxious", "neutral", "angry", "joyful",
	}

	sampleLocations = []struct {
		name     string
		lat, lon float64
	}{
		{"National Taiwan University", 25.0173, 121.5397},
		{"Taipei 101", 25.0330, 121.5654},
		{"Shilin Night Market", 25.0880, 121.5240},
		{"Tamsui", 25.1677, 121.4458},
		{"Ximending", 25.0421, 121.5071},
		{"Da'an Forest Park", 25.0263, 121.5360},
	}

	sampleVlogTitles = []string{
		"My Morning Routine", "Weekend Adventure", "Coffee Shop Vibes",
		"Campus Life", "Night Market Food Tour", "Sunset at the Beach",
		"Study Session", "Cooking at Home", "City Exploration", "Relaxing Day Off",
	}

	sampleVlogDescriptions = []string{
		"Had a great time today!", "Exploring new places in the city",
		"Just enjoying the moment", "Trying out new things",
		"Beautiful weather today", "Spent time with friends",
		"Productive day!", "Needed this break",
		"Discovering hidden gems", "Simple pleasures",
	}
)

// Reset clears every collection and every stored blob.
func (s *Seeder) Reset(ctx context.Context) error {
	for _, collection := range []string{
		database.VlogCollection, database.SentimentCollection, database.GPSCollection,
	} {
		if _, err := s.remover.Clear(ctx, collection); err != nil {
			return err
		}
	}

	removed, err := s.blobs.RemoveAll(ctx)
	if err != nil {
		return err
	}

	logger.Info("cleared stored blobs", "removed", removed)

	return nil
}

// Run inserts count vlogs, 2*count sentiments and 2*count GPS samples with
// timestamps spread over the last 30 days.
func (s *Seeder) Run(ctx context.Context, count int) error {
	for i := 0; i < count; i++ {
		duration := 30 + rand.Float64()*270
		vlog := &model.Vlog{
			UserID:      pick(sampleUsers),
			VideoURL:    fmt.Sprintf("https://example.com/videos/sample_%d.mp4", i+1),
			Title:       ptr(pick(sampleVlogTitles)),
			Description: ptr(pick(sampleVlogDescriptions)),
			Duration:    &duration,
			Timestamp:   pastTimestamp(),
		}
		if _, err := s.writer.CreateVlog(ctx, vlog); err != nil {
			return err
		}
	}
	logger.Info("seeded vlogs", "count", count)

	for i := 0; i < 2*count; i++ {
		intensity := rand.Float64()
		sentiment := &model.Sentiment{
			UserID:    pick(sampleUsers),
			Emotion:   pick(sampleEmotions),
			Intensity: &intensity,
			Timestamp: pastTimestamp(),
		}
		if _, err := s.writer.CreateSentiment(ctx, sentiment); err != nil {
			return err
		}
	}
	logger.Info("seeded sentiments", "count", 2*count)

	for i := 0; i < 2*count; i++ {
		location := sampleLocations[rand.IntN(len(sampleLocations))]
		lat := location.lat + rand.Float64()*0.01 - 0.005
		lon := location.lon + rand.Float64()*0.01 - 0.005
		accuracy := 3 + rand.Float64()*12
		gps := &model.GPSCoordinate{
			UserID:       pick(sampleUsers),
			Latitude:     &lat,
			Longitude:    &lon,
			Accuracy:     &accuracy,
			LocationName: ptr(location.name),
			Timestamp:    pastTimestamp(),
		}
		if _, err := s.writer.CreateGPS(ctx, gps); err != nil {
			return err
		}
	}
	logger.Info("seeded gps coordinates", "count", 2*count)

	return nil
}

func pick(values []string) string {
	return values[rand.IntN(len(values))]
}

func ptr(s string) *string {
	return &s
}

func pastTimestamp() time.Time {
	offset := time.Duration(rand.IntN(30*24)) * time.Hour

	return time.Now().UTC().Add(-offset)
}

package usecase

import (
	"context"
	"time"

	"emogo/internal/domain/dto"
	"emogo/internal/domain/repository/database"
)

// exportLimit bounds a single export so one request cannot pull an
// unbounded result set into memory.
const exportLimit = 10_000

// Exporter assembles the bulk-export bundle and the per-collection counts
// shown on the export page.
type Exporter struct {
	lister  database.Lister
	counter database.Counter
}

func NewExporter(lister database.Lister, counter database.Counter) *Exporter {
	return &Exporter{
		lister:  lister,
		counter: counter,
	}
}

func (e *Exporter) Bundle(ctx context.Context) (dto.ExportBundle, error) {
	vlogs, err := e.lister.Vlogs(ctx, "", exportLimit)
	if err != nil {
		return dto.ExportBundle{}, err
	}

	sentiments, err := e.lister.Sentiments(ctx, "", exportLimit)
	if err != nil {
		return dto.ExportBundle{}, err
	}

	coordinates, err := e.lister.GPSCoordinates(ctx, "", exportLimit)
	if err != nil {
		return dto.ExportBundle{}, err
	}

	return dto.ExportBundle{
		ExportDate:          time.Now().UTC(),
		TotalVlogs:          len(vlogs),
		TotalSentiments:     len(sentiments),
		TotalGPSCoordinates: len(coordinates),
		Data: dto.ExportData{
			Vlogs:          vlogs,
			Sentiments:     sentiments,
			GPSCoordinates: coordinates,
		},
	}, nil
}

func (e *Exporter) Counts(ctx context.Context) (dto.CollectionCounts, error) {
	vlogs, err := e.counter.Count(ctx, database.VlogCollection)
	if err != nil {
		return dto.CollectionCounts{}, err
	}

	sentiments, err := e.counter.Count(ctx, database.SentimentCollection)
	if err != nil {
		return dto.CollectionCounts{}, err
	}

	coordinates, err := e.counter.Count(ctx, database.GPSCollection)
	if err != nil {
		return dto.CollectionCounts{}, err
	}

	return dto.CollectionCounts{
		Vlogs:          vlogs,
		Sentiments:     sentiments,
		GPSCoordinates: coordinates,
	}, nil
}

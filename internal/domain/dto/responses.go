package dto

import (
	"time"

	"emogo/internal/domain/model"
)

// CreateResult is returned by the JSON record-creation endpoints.
type CreateResult struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// VlogUploadResult is returned by the multipart vlog upload endpoint.
type VlogUploadResult struct {
	Message     string `json:"message"`
	ID          string `json:"id"`
	VideoURL    string `json:"video_url"`
	DownloadURL string `json:"download_url"`
	FileSize    int64  `json:"file_size"`
}

// ExportBundle aggregates every stored record of all three kinds.
type ExportBundle struct {
	ExportDate          time.Time  `json:"export_date"`
	TotalVlogs          int        `json:"total_vlogs"`
	TotalSentiments     int        `json:"total_sentiments"`
	TotalGPSCoordinates int        `json:"total_gps_coordinates"`
	Data                ExportData `json:"data"`
}

type ExportData struct {
	Vlogs          []model.Vlog          `json:"vlogs"`
	Sentiments     []model.Sentiment     `json:"sentiments"`
	GPSCoordinates []model.GPSCoordinate `json:"gps_coordinates"`
}

// CollectionCounts holds per-kind record totals for the export page and the
// health probe.
type CollectionCounts struct {
	Vlogs          int64 `json:"vlogs"`
	Sentiments     int64 `json:"sentiments"`
	GPSCoordinates int64 `json:"gps_coordinates"`
}

// HealthStatus reports database reachability.
type HealthStatus struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

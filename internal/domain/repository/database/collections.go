package database

// One collection per record kind; no cross-collection references.
const (
	VlogCollection      = "vlogs"
	SentimentCollection = "sentiments"
	GPSCollection       = "gps_coordinates"
)

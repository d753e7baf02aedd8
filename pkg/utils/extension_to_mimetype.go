package utils

import (
	"path/filepath"
	"strings"
)

// extensionToMimeType maps the video extensions the service stores to their
// typical MIME types.
var extensionToMimeType = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
}

// GetMimeTypeFromExtension returns a MIME type for a stored file name based
// on its extension. If no specific type is known, it defaults to
// "application/octet-stream".
func GetMimeTypeFromExtension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mimeType, ok := extensionToMimeType[ext]; ok {
		return mimeType
	}

	return "application/octet-stream"
}

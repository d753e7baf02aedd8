// Package media allocates collision-free storage names for uploaded videos.
package media

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"emogo/internal/domain"
)

// allowedExtensions is the fixed allow-list of uploadable video formats.
var allowedExtensions = map[string]struct{}{
	".mp4":  {},
	".avi":  {},
	".mov":  {},
	".mkv":  {},
	".webm": {},
	".m4v":  {},
}

// AllocateName derives a globally-unique storage name from a client-supplied
// filename. The client base name is never trusted or reused: only its
// extension survives, lower-cased, appended to a random 128-bit identifier.
// Two concurrent uploads with identical filenames therefore never collide.
func AllocateName(declared string) (string, error) {
	ext := strings.ToLower(filepath.Ext(declared))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", domain.UnsupportedMediaTypeError{Ext: ext}
	}

	return uuid.New().String() + ext, nil
}

// ValidStoredName reports whether a client-supplied blob name could have been
// produced by AllocateName. It rejects anything that escapes the flat media
// directory, so handlers can pass names straight to the blob store.
func ValidStoredName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}

	ext := strings.ToLower(filepath.Ext(name))
	_, ok := allowedExtensions[ext]

	return ok
}

package entity

import "io"

// VlogUpload is a multipart vlog submission: metadata fields plus the raw
// video stream, still unread.
type VlogUpload struct {
	UserID      string
	Filename    string
	File        io.Reader
	Title       *string
	Description *string
}

package entity

// PutResult describes a blob that was fully flushed to durable storage.
type PutResult struct {
	Size        int64
	ContentType string
}

// BlobInfo carries the metadata needed to serve a stored blob back.
type BlobInfo struct {
	Size        int64
	ContentType string
}

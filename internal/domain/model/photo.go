package model

import (
	"io"
	"time"
)

// RetrievalPathPrefix is the public route under which blobs are served.
const RetrievalPathPrefix = "/api/uploads/"

// Photo is the immutable metadata record of one uploaded file.
type Photo struct {
	ID           string
	SessionID    string
	StorageKey   string
	OriginalName string
	MimeType     string
	SizeBytes    int64
	CreatedAt    time.Time
}

// RetrievalPath is derived from the storage key, never from user input.
func (p Photo) RetrievalPath() string {
	return RetrievalPathPrefix + p.StorageKey
}

// UploadFile is one client-supplied file of an upload request.
type UploadFile struct {
	Name        string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

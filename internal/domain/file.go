package domain

import (
	"errors"
	"time"
)

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrDuplicateFile = errors.New("file with this name already exists")
)

// File is stored metadata; content lives alongside it in the store and is
// only materialized on download.
type File struct {
	Name        string
	ContentType string
	Size        int64
	CreatedAt   time.Time
	EditedAt    time.Time
}

// FileContent couples the raw bytes with the content type they were
// uploaded under.
type FileContent struct {
	ContentType string
	Content     []byte
}

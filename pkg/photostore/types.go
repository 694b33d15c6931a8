package photostore

import (
	"errors"
	"io"
	"time"
)

// ContentType is declared for every served photo regardless of the bytes stored.
const ContentType = "image/jpeg"

var (
	ErrNotFound    = errors.New("photo file not found")
	ErrInvalidName = errors.New("invalid photo file name")
)

// Photo is an opened photo file. Callers must close Content.
type Photo struct {
	Name    string
	Size    int64
	ModTime time.Time
	Content io.ReadCloser
}

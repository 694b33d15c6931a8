package photostore

import (
	"context"
	"io"
)

// IPhotoStore manages photo blobs inside one directory.
type IPhotoStore interface {
	// Save writes r to a new uniquely named file and returns that name.
	Save(ctx context.Context, r io.Reader) (string, error)
	// Remove deletes the named file. A missing file is not an error.
	Remove(ctx context.Context, name string) error
	// Open opens the named file for reading. Returns ErrNotFound if it is absent.
	Open(ctx context.Context, name string) (Photo, error)
}

package photostore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"inventory-service/pkg/log"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store is a filesystem-backed IPhotoStore.
type Store struct {
	dir string
	l   log.Logger
}

var _ IPhotoStore = (*Store)(nil)

// New returns a Store rooted at dir, creating the directory if needed.
func New(ctx context.Context, dir string, l log.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("photostore: directory is required")
	}

	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("photostore: create directory %s: %w", dir, err)
		}
		l.Infof(ctx, "Created cache directory: %s", dir)
	} else if err != nil {
		return nil, fmt.Errorf("photostore: stat %s: %w", dir, err)
	}

	return &Store{dir: dir, l: l}, nil
}

// Dir returns the root directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Save(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString()
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return "", fmt.Errorf("photostore.Save: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("photostore.Save: write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("photostore.Save: close %s: %w", name, err)
	}

	s.l.Debugf(ctx, "photostore.Save: stored %s", name)
	return name, nil
}

func (s *Store) Remove(ctx context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("photostore.Remove: %w", err)
	}

	s.l.Debugf(ctx, "photostore.Remove: removed %s", name)
	return nil
}

func (s *Store) Open(ctx context.Context, name string) (Photo, error) {
	path, err := s.path(name)
	if err != nil {
		return Photo{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Photo{}, ErrNotFound
		}
		return Photo{}, fmt.Errorf("photostore.Open: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return Photo{}, fmt.Errorf("photostore.Open: stat %s: %w", name, err)
	}
	if info.IsDir() {
		f.Close()
		return Photo{}, ErrNotFound
	}

	return Photo{
		Name:    name,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Content: f,
	}, nil
}

// path resolves name inside the root directory, rejecting anything that
// could escape it.
func (s *Store) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidName
	}
	return filepath.Join(s.dir, name), nil
}

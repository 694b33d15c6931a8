package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"inventory-service/internal/inventory"
	"inventory-service/internal/inventory/repository"
	"inventory-service/internal/inventory/repository/memory"
	"inventory-service/internal/inventory/usecase"
	"inventory-service/pkg/photostore"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockPhotoStore keeps photos in a map and can be told to fail.
type mockPhotoStore struct {
	files     map[string]string
	seq       int
	saveErr   error
	removeErr error
	openErr   error
	removed   []string
}

func newMockPhotoStore() *mockPhotoStore {
	return &mockPhotoStore{files: make(map[string]string)}
}

func (m *mockPhotoStore) Save(ctx context.Context, r io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.seq++
	name := fmt.Sprintf("photo-%d", m.seq)
	m.files[name] = string(data)
	return name, nil
}

func (m *mockPhotoStore) Remove(ctx context.Context, name string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, name)
	delete(m.files, name)
	return nil
}

func (m *mockPhotoStore) Open(ctx context.Context, name string) (photostore.Photo, error) {
	if m.openErr != nil {
		return photostore.Photo{}, m.openErr
	}
	data, ok := m.files[name]
	if !ok {
		return photostore.Photo{}, photostore.ErrNotFound
	}
	return photostore.Photo{
		Name:    name,
		Size:    int64(len(data)),
		Content: io.NopCloser(strings.NewReader(data)),
	}, nil
}

// vanishingRepo wraps a Repository and deletes the item right before
// SetItemPhoto, simulating a concurrent delete.
type vanishingRepo struct {
	repository.Repository
}

func (r vanishingRepo) SetItemPhoto(ctx context.Context, id int64, photoFile string) (inventory.Item, string, error) {
	r.Repository.DeleteItem(ctx, id)
	return r.Repository.SetItemPhoto(ctx, id, photoFile)
}

var errDisk = errors.New("disk failure")

func setup(t *testing.T) (inventory.UseCase, repository.Repository, *mockPhotoStore) {
	t.Helper()
	repo := memory.New(&mockLogger{})
	photos := newMockPhotoStore()
	return usecase.New(repo, photos, &mockLogger{}), repo, photos
}

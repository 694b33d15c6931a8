package usecase

import (
	"context"
	"errors"
	"fmt"

	"inventory-service/internal/inventory"
	"inventory-service/pkg/photostore"
)

// GetPhoto opens the photo of an Item for streaming. The caller closes Content.
func (uc *implUseCase) GetPhoto(ctx context.Context, id string) (inventory.PhotoOutput, error) {
	item, err := uc.getItem(ctx, id)
	if err != nil {
		return inventory.PhotoOutput{}, err
	}
	if !item.HasPhoto() {
		return inventory.PhotoOutput{}, inventory.ErrNoPhoto
	}

	photo, err := uc.photos.Open(ctx, item.PhotoFile)
	if err != nil {
		if errors.Is(err, photostore.ErrNotFound) {
			uc.l.Warnf(ctx, "uc.GetPhoto: item %d references missing file %s", item.ID, item.PhotoFile)
			return inventory.PhotoOutput{}, inventory.ErrPhotoNotFound
		}
		uc.l.Errorf(ctx, "uc.GetPhoto Open: %v", err)
		return inventory.PhotoOutput{}, err
	}

	return inventory.PhotoOutput{
		Size:        photo.Size,
		ContentType: photostore.ContentType,
		Content:     photo.Content,
	}, nil
}

// UpdatePhoto stores a new photo for an existing Item and removes the old file.
// The item is checked before anything is written; if it disappears before the
// reference is set, the new file is removed again.
func (uc *implUseCase) UpdatePhoto(ctx context.Context, input inventory.UpdatePhotoInput) (inventory.UpdatePhotoOutput, error) {
	item, err := uc.getItem(ctx, input.ID)
	if err != nil {
		return inventory.UpdatePhotoOutput{}, err
	}
	if input.Photo == nil {
		return inventory.UpdatePhotoOutput{}, inventory.ErrPhotoRequired
	}

	name, err := uc.photos.Save(ctx, input.Photo)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdatePhoto Save: %v", err)
		return inventory.UpdatePhotoOutput{}, err
	}

	updated, prev, err := uc.repo.SetItemPhoto(ctx, item.ID, name)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdatePhoto SetItemPhoto: %v", err)
		uc.releasePhoto(ctx, name)
		return inventory.UpdatePhotoOutput{}, err
	}
	if updated.ID == 0 {
		uc.releasePhoto(ctx, name)
		return inventory.UpdatePhotoOutput{}, inventory.ErrItemNotFound
	}

	// The new reference stays in place even if the old file cannot be removed.
	if err := uc.releasePhoto(ctx, prev); err != nil {
		return inventory.UpdatePhotoOutput{}, fmt.Errorf("uc.UpdatePhoto: release previous photo of item %d: %w", updated.ID, err)
	}

	uc.l.Infof(ctx, "uc.UpdatePhoto: item id=%d photo=%s", updated.ID, name)
	return inventory.UpdatePhotoOutput{Item: updated}, nil
}

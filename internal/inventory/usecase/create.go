package usecase

import (
	"context"
	"errors"
	"strings"

	"inventory-service/internal/inventory"
	repo "inventory-service/internal/inventory/repository"
)

// Create registers a new Item, storing its photo first when one was uploaded.
// The name is validated before any file is written.
func (uc *implUseCase) Create(ctx context.Context, input inventory.CreateItemInput) (inventory.CreateItemOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return inventory.CreateItemOutput{}, inventory.ErrNameRequired
	}

	var photoFile string
	if input.Photo != nil {
		name, err := uc.photos.Save(ctx, input.Photo)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create Save: %v", err)
			return inventory.CreateItemOutput{}, err
		}
		photoFile = name
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        input.Name,
		Description: input.Description,
		PhotoFile:   photoFile,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		uc.releasePhoto(ctx, photoFile)
		if errors.Is(err, repo.ErrEmptyName) {
			return inventory.CreateItemOutput{}, inventory.ErrNameRequired
		}
		return inventory.CreateItemOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: registered item id=%d photo=%t", item.ID, item.HasPhoto())
	return inventory.CreateItemOutput{Item: item}, nil
}

package usecase

import (
	"context"
	"fmt"

	"inventory-service/internal/inventory"
	repo "inventory-service/internal/inventory/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (inventory.DetailItemOutput, error) {
	item, err := uc.getItem(ctx, id)
	if err != nil {
		return inventory.DetailItemOutput{}, err
	}
	return inventory.DetailItemOutput{Item: item}, nil
}

// Update replaces name and description when non-empty values are given.
func (uc *implUseCase) Update(ctx context.Context, input inventory.UpdateItemInput) (inventory.UpdateItemOutput, error) {
	id, ok := uc.parseID(input.ID)
	if !ok {
		return inventory.UpdateItemOutput{}, inventory.ErrItemNotFound
	}

	item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return inventory.UpdateItemOutput{}, err
	}
	if item.ID == 0 {
		return inventory.UpdateItemOutput{}, inventory.ErrItemNotFound
	}
	return inventory.UpdateItemOutput{Item: item}, nil
}

// Delete removes an Item and then its photo file.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	itemID, ok := uc.parseID(id)
	if !ok {
		return inventory.ErrItemNotFound
	}

	removed, err := uc.repo.DeleteItem(ctx, itemID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	if removed.ID == 0 {
		return inventory.ErrItemNotFound
	}

	if err := uc.releasePhoto(ctx, removed.PhotoFile); err != nil {
		return fmt.Errorf("uc.Delete: release photo of item %d: %w", removed.ID, err)
	}

	uc.l.Infof(ctx, "uc.Delete: removed item id=%d", removed.ID)
	return nil
}

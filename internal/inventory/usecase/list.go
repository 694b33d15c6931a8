package usecase

import (
	"context"

	"inventory-service/internal/inventory"
)

// List returns every Item in registration order.
func (uc *implUseCase) List(ctx context.Context) (inventory.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return inventory.ListItemsOutput{}, err
	}
	return inventory.ListItemsOutput{Items: items}, nil
}

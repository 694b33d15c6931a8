package usecase

import (
	"context"

	"inventory-service/internal/inventory"
)

// Search looks an Item up by id. A missing id names no item. The photo link
// is only requested when the caller asked for it and the item has a photo.
func (uc *implUseCase) Search(ctx context.Context, input inventory.SearchInput) (inventory.SearchOutput, error) {
	item, err := uc.getItem(ctx, input.ID)
	if err != nil {
		return inventory.SearchOutput{}, err
	}

	return inventory.SearchOutput{
		Item:         item,
		IncludePhoto: input.IncludePhoto && item.HasPhoto(),
	}, nil
}

package repository

import (
	"context"

	"inventory-service/internal/inventory"
)

// Repository is the composed interface for the inventory data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
// Lookups return a zero-value Item (ID == 0) when the item does not exist.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (inventory.Item, error)
	GetOneItem(ctx context.Context, id int64) (inventory.Item, error)
	ListItems(ctx context.Context) ([]inventory.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (inventory.Item, error)
	// SetItemPhoto replaces the photo reference and returns the previous one.
	SetItemPhoto(ctx context.Context, id int64, photoFile string) (inventory.Item, string, error)
	// DeleteItem removes the item and returns it so the caller can release its photo.
	DeleteItem(ctx context.Context, id int64) (inventory.Item, error)
}

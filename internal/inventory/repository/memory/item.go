package memory

import (
	"context"
	"slices"
	"strings"

	"inventory-service/internal/inventory"
	repo "inventory-service/internal/inventory/repository"
)

// CreateItem appends a new Item with the next identifier.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (inventory.Item, error) {
	if strings.TrimSpace(opt.Name) == "" {
		return inventory.Item{}, repo.ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item := inventory.Item{
		ID:          r.nextID,
		Name:        opt.Name,
		Description: opt.Description,
		PhotoFile:   opt.PhotoFile,
	}
	r.nextID++
	r.items = append(r.items, item)

	r.l.Debugf(ctx, "%s: id=%d", r.dsn("CreateItem"), item.ID)
	return item, nil
}

// GetOneItem returns the Item with the given id, or a zero value when absent.
func (r *implRepository) GetOneItem(ctx context.Context, id int64) (inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return inventory.Item{}, nil
	}
	return r.items[i], nil
}

// ListItems returns a snapshot of all Items in insertion order.
func (r *implRepository) ListItems(ctx context.Context) ([]inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.items), nil
}

// UpdateItem merges non-empty fields into the stored Item.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(opt.ID)
	if i < 0 {
		return inventory.Item{}, nil
	}

	item := &r.items[i]
	if opt.Name != "" {
		item.Name = opt.Name
	}
	if opt.Description != "" {
		item.Description = opt.Description
	}
	return *item, nil
}

// SetItemPhoto overwrites the photo reference and hands back the old one.
func (r *implRepository) SetItemPhoto(ctx context.Context, id int64, photoFile string) (inventory.Item, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return inventory.Item{}, "", nil
	}

	prev := r.items[i].PhotoFile
	r.items[i].PhotoFile = photoFile

	r.l.Debugf(ctx, "%s: id=%d photo=%s previous=%s", r.dsn("SetItemPhoto"), id, photoFile, prev)
	return r.items[i], prev, nil
}

// DeleteItem removes an Item by id and returns what was removed.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) (inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return inventory.Item{}, nil
	}

	item := r.items[i]
	r.items = slices.Delete(r.items, i, i+1)

	r.l.Debugf(ctx, "%s: id=%d", r.dsn("DeleteItem"), id)
	return item, nil
}

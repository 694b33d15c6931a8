package usecase

import (
	"context"
	"math"
	"strconv"
	"strings"

	"inventory-service/internal/inventory"
)

// maxExactID is the largest integer a float64 represents exactly.
const maxExactID = 1 << 53

// parseID converts a textual identifier. Numeric forms without a fractional
// part ("1", "1.0", "1e0") name the same item; anything else, or a
// non-positive value, cannot name an item.
func (uc *implUseCase) parseID(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, id > 0
	}

	if strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f <= 0 || f > maxExactID {
		return 0, false
	}
	return int64(f), true
}

// getItem resolves a textual id to a stored Item or ErrItemNotFound.
func (uc *implUseCase) getItem(ctx context.Context, raw string) (inventory.Item, error) {
	id, ok := uc.parseID(raw)
	if !ok {
		return inventory.Item{}, inventory.ErrItemNotFound
	}

	item, err := uc.repo.GetOneItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.getItem GetOneItem: %v", err)
		return inventory.Item{}, err
	}
	if item.ID == 0 {
		return inventory.Item{}, inventory.ErrItemNotFound
	}
	return item, nil
}

// releasePhoto removes a photo file that is no longer referenced.
func (uc *implUseCase) releasePhoto(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}
	if err := uc.photos.Remove(ctx, name); err != nil {
		uc.l.Errorf(ctx, "uc.releasePhoto Remove %s: %v", name, err)
		return err
	}
	return nil
}

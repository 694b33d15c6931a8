package memory

import (
	"fmt"
	"sync"

	"inventory-service/internal/inventory"
	"inventory-service/internal/inventory/repository"
	"inventory-service/pkg/log"
)

// implRepository keeps items in insertion order. nextID only ever grows, so
// identifiers are never reused after a delete.
type implRepository struct {
	mu     sync.RWMutex
	items  []inventory.Item
	nextID int64
	l      log.Logger
}

// New creates an empty in-memory Repository for the inventory domain.
func New(l log.Logger) repository.Repository {
	return &implRepository{nextID: 1, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("inventory/repository/memory.%s", method)
}

// indexOf returns the slice position of id or -1. Callers hold mu.
func (r *implRepository) indexOf(id int64) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

package usecase

import (
	"inventory-service/internal/inventory"
	"inventory-service/internal/inventory/repository"
	"inventory-service/pkg/log"
	"inventory-service/pkg/photostore"
)

// implUseCase is the private implementation of inventory.UseCase.
type implUseCase struct {
	repo   repository.Repository
	photos photostore.IPhotoStore
	l      log.Logger
}

var _ inventory.UseCase = (*implUseCase)(nil)

// New creates a new inventory UseCase implementation.
func New(repo repository.Repository, photos photostore.IPhotoStore, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		photos: photos,
		l:      l,
	}
}

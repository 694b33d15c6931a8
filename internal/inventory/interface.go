package inventory

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Item CRUD
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, id string) error

	// Photo
	GetPhoto(ctx context.Context, id string) (PhotoOutput, error)
	UpdatePhoto(ctx context.Context, input UpdatePhotoInput) (UpdatePhotoOutput, error)

	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
}

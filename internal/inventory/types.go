package inventory

import "io"

// --- Item Domain Model ---

// Item is one inventory record held by the registry.
// PhotoFile names a file in the photo store; empty means no photo.
type Item struct {
	ID          int64
	Name        string
	Description string
	PhotoFile   string
}

// HasPhoto reports whether a photo file is referenced.
func (i Item) HasPhoto() bool {
	return i.PhotoFile != ""
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Description string
	Photo       io.Reader // nil when no photo was uploaded
}

type UpdateItemInput struct {
	ID          string
	Name        string
	Description string
}

type UpdatePhotoInput struct {
	ID    string
	Photo io.Reader
}

type SearchInput struct {
	ID           string
	IncludePhoto bool
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}

type UpdatePhotoOutput struct {
	Item Item
}

type PhotoOutput struct {
	Size        int64
	ContentType string
	Content     io.ReadCloser
}

type SearchOutput struct {
	Item         Item
	IncludePhoto bool
}

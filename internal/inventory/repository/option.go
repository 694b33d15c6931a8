package repository

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Name        string
	Description string
	PhotoFile   string
}

// UpdateItemOptions holds parameters for updating an existing Item.
// Empty fields leave the stored value untouched.
type UpdateItemOptions struct {
	ID          int64
	Name        string
	Description string
}

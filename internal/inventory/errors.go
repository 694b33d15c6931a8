package inventory

import "errors"

var (
	ErrNameRequired   = errors.New("inventory_name is required")
	ErrPhotoRequired  = errors.New("photo is required")
	ErrItemNotFound   = errors.New("item not found")
	ErrNoPhoto        = errors.New("item has no photo")
	ErrPhotoNotFound  = errors.New("photo file not found")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrPhotoTooLarge  = errors.New("photo too large")
)

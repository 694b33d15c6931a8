package repository

import "errors"

var (
	ErrEmptyName = errors.New("name must not be empty")
)

package domain

import "errors"

var (
	ErrLibraryNotFound  = errors.New("library not found")
	ErrCategoryNotFound = errors.New("category not found")
)

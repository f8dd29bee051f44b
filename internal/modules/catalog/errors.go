package catalog

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrSlugTaken        = errors.New("category slug already taken")
	ErrValidation       = errors.New("validation error")
)

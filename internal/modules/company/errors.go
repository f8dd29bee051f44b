package company

import "errors"

var (
	ErrNotFound         = errors.New("company not found")
	ErrSlugTaken        = errors.New("company slug already taken")
	ErrServiceNotFound  = errors.New("service not found")
	ErrOfferingNotFound = errors.New("company service not found")
	ErrOfferingExists   = errors.New("company already offers this service")
	ErrForbidden        = errors.New("forbidden")
	ErrValidation       = errors.New("validation error")
)

package user

import "errors"

var (
	ErrNotFound        = errors.New("user not found")
	ErrCompanyNotFound = errors.New("company not found")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation error")
)

package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrServiceNotFound         = errors.New("service not found or inactive")
	ErrCompanyNotFound         = errors.New("company not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrForbidden               = errors.New("forbidden")
	ErrTimeConflict            = errors.New("time slot conflicts with existing booking")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrDurationTooLong         = errors.New("total booking duration exceeds the limit")
)

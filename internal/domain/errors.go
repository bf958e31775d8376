package domain

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrUnknownSlot = errors.New("unknown check-in slot token")
)

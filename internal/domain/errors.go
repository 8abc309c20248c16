package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSelectionFull      = errors.New("maximum number of seats per booking reached")
	ErrMalformedPayload   = errors.New("malformed checkout payload")
)

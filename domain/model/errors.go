package model

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrValidation           = errors.New("validation failed")
	ErrConflict             = errors.New("already exists")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrGenerationInProgress = errors.New("generation already in progress")
	ErrAssistUnavailable    = errors.New("content assist unavailable")
)

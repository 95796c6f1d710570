package domain

import "errors"

// Backend error taxonomy. The API client maps HTTP outcomes onto these.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrBadRequest         = errors.New("bad request")
	ErrBackendUnavailable = errors.New("booking backend unavailable")
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

var (
	ErrValidation      = errors.New("validation error")
	ErrRoomUnavailable = errors.New("room is not available for the selected date")
	ErrCheckPending    = errors.New("availability check still in progress")
)

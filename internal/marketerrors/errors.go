package marketerrors

import "errors"

// One sentinel per error kind the service surfaces. Callers match with
// errors.Is; the HTTP edge maps each kind to a stable status code.
var (
	ErrValidation      = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrPermission      = errors.New("access denied")
	ErrConflict        = errors.New("conflicting state")
	ErrUnauthenticated = errors.New("authentication required")
	ErrStore           = errors.New("store failure")
)

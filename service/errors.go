package service

import "errors"

// Error kinds surfaced to handlers. Client-facing messages stay generic, the
// expected-vs-actual detail is only written to the server log.
var (
	ErrNotFound = errors.New("not found")

	// ErrInvalidState: the current status does not permit the transition.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidSession covers every intake binding failure (unknown table,
	// table not occupied, token mismatch) without telling the caller which,
	// so tokens cannot be enumerated.
	ErrInvalidSession = errors.New("invalid table or token")

	ErrValidation = errors.New("validation failed")
)

// Package store persists tables, orders and service calls. Status transitions
// are written as conditional updates guarded by the expected current status,
// so a lost race surfaces as ErrStaleState instead of a corrupted record.
package store

import "errors"

// ErrNotFound is returned when the referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrStaleState is returned when a conditional update matched the record id
// but not its expected status.
var ErrStaleState = errors.New("record not in expected state")

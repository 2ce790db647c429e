package storage

import "errors"

var (
	// ErrNotFound reports that no entity with the requested identifier exists.
	// It is distinct from transport and decoding failures so callers can render
	// "this entity was removed" instead of a generic error.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict reports that an entity with the same identifier already exists.
	ErrConflict = errors.New("entity already exists")
)

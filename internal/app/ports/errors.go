package ports

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	ErrOutOfBounds = errors.New("cell out of bounds")
)

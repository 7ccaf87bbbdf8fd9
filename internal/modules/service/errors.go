package service

import "errors"

// Validation failures surfaced as 400s by the handlers. Anything the
// repos bubble up as gorm.ErrRecordNotFound becomes a 404 there.
var (
	ErrMissingPlant  = errors.New("plant id is required")
	ErrOutOfBounds   = errors.New("cell coordinates outside tray bounds")
	ErrInvalidOffset = errors.New("day offsets must be positive")
)

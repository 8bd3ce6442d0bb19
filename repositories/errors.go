package repositories

import "errors"

// ErrNotFound is returned when a lookup matches no row, or a targeted
// update/delete affects none.
var ErrNotFound = errors.New("record not found")

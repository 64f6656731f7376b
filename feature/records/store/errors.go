package store

import "errors"

// ErrNotFound is returned when a lookup matched no row. Callers treat it as
// recoverable: fallback tiers advance, and the command layer renders it as a
// "no results" message.
var ErrNotFound = errors.New("not found")

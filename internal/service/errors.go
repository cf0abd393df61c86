package service

import "errors"

// ErrNotFound indicates an update against an id that does not exist. Lookups
// by id are lenient and return no record instead of this error.
var ErrNotFound = errors.New("record not found")

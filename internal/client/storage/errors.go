package storage

import "errors"

// Common client storage errors
var (
	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrEmptyKey indicates that a record key was not provided
	ErrEmptyKey = errors.New("storage key is empty")
)

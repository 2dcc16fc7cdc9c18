package storage

import "errors"

// Common storage errors
var (
	// ErrArticleNotFound indicates that article was not found
	// or is not in the expected state (draft vs published)
	ErrArticleNotFound = errors.New("article not found")
)

package storage

import (
	"context"

	"github.com/iudanet/articlekeeper/internal/models"
)

//go:generate moq -out storage_mock.go . ItemCache SetStorage ProfileStorage

// Record keys used by the stores
const (
	KeyCachedPosts  = "cached_posts"
	KeyCachedDrafts = "cached_drafts"
	KeySelectedTags = "selected_tags"
	KeyLikedIDs     = "liked_ids"
	KeyUserTags     = "user_tags"
)

// ItemCache stores ordered lists of content items captured at a point in time.
// Each Save replaces the previous value under the key wholesale.
type ItemCache interface {
	// SaveItems replaces the list stored under key
	SaveItems(ctx context.Context, key string, items []models.CachedItem) error

	// LoadItems returns the list stored under key in saved order.
	// Returns an empty list if nothing was saved yet.
	LoadItems(ctx context.Context, key string) ([]models.CachedItem, error)
}

// SetStorage stores ordered sets of string labels or ids
type SetStorage interface {
	// SaveSet replaces the set stored under key
	SaveSet(ctx context.Context, key string, values []string) error

	// LoadSet returns the set stored under key.
	// Returns an empty list if nothing was saved yet.
	LoadSet(ctx context.Context, key string) ([]string, error)
}

// ProfileStorage stores the local user profile
type ProfileStorage interface {
	// SaveProfile replaces the stored profile
	SaveProfile(ctx context.Context, profile models.Profile) error

	// LoadProfile returns the stored profile or zero value if nothing was saved yet
	LoadProfile(ctx context.Context) (models.Profile, error)
}

// Storage aggregates all local cache capabilities of one backend
type Storage interface {
	ItemCache
	SetStorage
	ProfileStorage

	// Close releases the underlying database
	Close() error
}

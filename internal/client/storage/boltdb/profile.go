package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/articlekeeper/internal/models"
)

const (
	keyUserName       = "user_name"
	keyPostedArticles = "posted_articles_count"
)

// SaveProfile stores the display name and the published counter
func (s *Storage) SaveProfile(ctx context.Context, profile models.Profile) error {
	return s.update(bucketProfile, func(b *bbolt.Bucket) error {
		if err := b.Put([]byte(keyUserName), []byte(profile.Name)); err != nil {
			return fmt.Errorf("failed to save user name: %w", err)
		}

		// Конвертируем счетчик в bytes
		count := make([]byte, 8)
		binary.BigEndian.PutUint64(count, uint64(max(profile.PublishedCount, 0)))

		if err := b.Put([]byte(keyPostedArticles), count); err != nil {
			return fmt.Errorf("failed to save posted articles count: %w", err)
		}
		return nil
	})
}

// LoadProfile returns the stored profile.
// Returns zero value if nothing was saved yet
func (s *Storage) LoadProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	err := s.view(bucketProfile, func(b *bbolt.Bucket) error {
		if name := b.Get([]byte(keyUserName)); name != nil {
			profile.Name = string(name)
		}

		count := b.Get([]byte(keyPostedArticles))
		if count == nil {
			return nil
		}
		if len(count) != 8 {
			return fmt.Errorf("invalid posted articles count length %d", len(count))
		}
		profile.PublishedCount = int(binary.BigEndian.Uint64(count))
		return nil
	})
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to load profile: %w", err)
	}

	return profile, nil
}

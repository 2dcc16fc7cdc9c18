package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/articlekeeper/internal/client/storage"
	"github.com/iudanet/articlekeeper/internal/models"
)

// SaveItems replaces the list stored under key
func (s *Storage) SaveItems(ctx context.Context, key string, items []models.CachedItem) error {
	if key == "" {
		return storage.ErrEmptyKey
	}
	if items == nil {
		items = []models.CachedItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}

	return s.update(bucketItems, func(b *bbolt.Bucket) error {
		if err := b.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save items %q: %w", key, err)
		}
		return nil
	})
}

// LoadItems returns the list stored under key in saved order
func (s *Storage) LoadItems(ctx context.Context, key string) ([]models.CachedItem, error) {
	if key == "" {
		return nil, storage.ErrEmptyKey
	}

	var items []models.CachedItem
	err := s.view(bucketItems, func(b *bbolt.Bucket) error {
		data := b.Get([]byte(key))
		if data == nil {
			return nil
		}
		// data валидна только внутри транзакции, Unmarshal копирует
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("failed to unmarshal items %q: %w", key, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

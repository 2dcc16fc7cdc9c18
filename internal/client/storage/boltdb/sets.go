package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/articlekeeper/internal/client/storage"
)

// SaveSet replaces the set stored under key
func (s *Storage) SaveSet(ctx context.Context, key string, values []string) error {
	if key == "" {
		return storage.ErrEmptyKey
	}
	if values == nil {
		values = []string{}
	}

	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal set: %w", err)
	}

	return s.update(bucketSets, func(b *bbolt.Bucket) error {
		if err := b.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save set %q: %w", key, err)
		}
		return nil
	})
}

// LoadSet returns the set stored under key
func (s *Storage) LoadSet(ctx context.Context, key string) ([]string, error) {
	if key == "" {
		return nil, storage.ErrEmptyKey
	}

	var values []string
	err := s.view(bucketSets, func(b *bbolt.Bucket) error {
		data := b.Get([]byte(key))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to unmarshal set %q: %w", key, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}

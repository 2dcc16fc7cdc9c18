// Package badgerdb implements the local cache on top of BadgerDB.
// Values are stored under prefixed keys: items:<key>, sets:<key>, profile:<field>.
package badgerdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/iudanet/articlekeeper/internal/client/storage"
	"github.com/iudanet/articlekeeper/internal/models"
)

const (
	itemsPrefix   = "items:"
	setsPrefix    = "sets:"
	profilePrefix = "profile:"

	keyUserName       = profilePrefix + "user_name"
	keyPostedArticles = profilePrefix + "posted_articles_count"
)

var _ storage.Storage = (*Storage)(nil)

// Storage is a BadgerDB backed local cache
type Storage struct {
	db *badger.DB
	mu sync.RWMutex
}

// New opens (or creates) a Badger database in dir
func New(ctx context.Context, dir string) (*Storage, error) {
	return open(badger.DefaultOptions(dir).WithLogger(nil))
}

// NewInMemory opens a Badger database that is never written to disk
func NewInMemory() (*Storage, error) {
	return open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database. Repeated calls are no-op.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// SaveItems replaces the list stored under key
func (s *Storage) SaveItems(ctx context.Context, key string, items []models.CachedItem) error {
	if key == "" {
		return storage.ErrEmptyKey
	}
	if items == nil {
		items = []models.CachedItem{}
	}
	if err := s.putJSON(itemsPrefix+key, items); err != nil {
		return fmt.Errorf("save items %q: %w", key, err)
	}
	return nil
}

// LoadItems returns the list stored under key in saved order
func (s *Storage) LoadItems(ctx context.Context, key string) ([]models.CachedItem, error) {
	if key == "" {
		return nil, storage.ErrEmptyKey
	}
	var items []models.CachedItem
	if err := s.getJSON(itemsPrefix+key, &items); err != nil {
		return nil, fmt.Errorf("load items %q: %w", key, err)
	}
	return items, nil
}

// SaveSet replaces the set stored under key
func (s *Storage) SaveSet(ctx context.Context, key string, values []string) error {
	if key == "" {
		return storage.ErrEmptyKey
	}
	if values == nil {
		values = []string{}
	}
	if err := s.putJSON(setsPrefix+key, values); err != nil {
		return fmt.Errorf("save set %q: %w", key, err)
	}
	return nil
}

// LoadSet returns the set stored under key
func (s *Storage) LoadSet(ctx context.Context, key string) ([]string, error) {
	if key == "" {
		return nil, storage.ErrEmptyKey
	}
	var values []string
	if err := s.getJSON(setsPrefix+key, &values); err != nil {
		return nil, fmt.Errorf("load set %q: %w", key, err)
	}
	return values, nil
}

// SaveProfile stores both profile fields in one transaction
func (s *Storage) SaveProfile(ctx context.Context, profile models.Profile) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyUserName), []byte(profile.Name)); err != nil {
			return err
		}
		count := strconv.Itoa(max(profile.PublishedCount, 0))
		return txn.Set([]byte(keyPostedArticles), []byte(count))
	})
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// LoadProfile returns the stored profile or zero value
func (s *Storage) LoadProfile(ctx context.Context) (models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return models.Profile{}, storage.ErrStorageClosed
	}

	var profile models.Profile
	err := s.db.View(func(txn *badger.Txn) error {
		name, err := getRaw(txn, keyUserName)
		if err != nil {
			return err
		}
		profile.Name = string(name)

		count, err := getRaw(txn, keyPostedArticles)
		if err != nil || count == nil {
			return err
		}
		n, err := strconv.Atoi(string(count))
		if err != nil {
			return fmt.Errorf("parse posted articles count: %w", err)
		}
		profile.PublishedCount = n
		return nil
	})
	if err != nil {
		return models.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}

func (s *Storage) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// getJSON оставляет v нетронутым, если ключ отсутствует
func (s *Storage) getJSON(key string, v any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// getRaw возвращает копию значения или nil, если ключа нет
func getRaw(txn *badger.Txn, key string) ([]byte, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

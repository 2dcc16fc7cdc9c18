package likes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"github.com/iudanet/articlekeeper/internal/client/storage"
	"github.com/iudanet/articlekeeper/internal/models"
)

// ErrEmptyID id статьи не указан
var ErrEmptyID = errors.New("article id is empty")

// Store локальное множество понравившихся статей.
// Сервер о лайках не знает.
type Store struct {
	sets   storage.SetStorage
	logger *slog.Logger
	liked  map[string]struct{}
	mu     sync.RWMutex
}

// NewStore создает хранилище лайков
func NewStore(sets storage.SetStorage, logger *slog.Logger) *Store {
	return &Store{sets: sets, logger: logger, liked: make(map[string]struct{})}
}

// Load восстанавливает сохраненные лайки
func (s *Store) Load(ctx context.Context) error {
	ids, err := s.sets.LoadSet(ctx, storage.KeyLikedIDs)
	if err != nil {
		return fmt.Errorf("failed to load liked ids: %w", err)
	}

	s.mu.Lock()
	s.liked = models.SetOf(ids)
	s.mu.Unlock()
	return nil
}

// Toggle ставит или снимает лайк и сохраняет множество.
// Возвращает новое состояние. При ошибке сохранения состояние не меняется.
func (s *Store) Toggle(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.liked)
	_, was := next[id]
	if was {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}

	if err := s.sets.SaveSet(ctx, storage.KeyLikedIDs, models.SortedKeys(next)); err != nil {
		return was, fmt.Errorf("failed to save liked ids: %w", err)
	}
	s.liked = next

	s.logger.Debug("Like toggled", "id", id, "liked", !was)
	return !was, nil
}

// IsLiked проверяет, отмечена ли статья
func (s *Store) IsLiked(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.liked[id]
	return ok
}

// IDs возвращает отмеченные id в лексикографическом порядке
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.SortedKeys(s.liked)
}

// Set возвращает копию множества отмеченных id
func (s *Store) Set() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.liked)
}

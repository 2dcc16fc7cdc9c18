package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/iudanet/articlekeeper/internal/client/storage"
	"github.com/iudanet/articlekeeper/internal/models"
)

// Store локальный профиль: отображаемое имя и счетчик опубликованных статей.
// Счетчик не опускается ниже нуля.
type Store struct {
	storage storage.ProfileStorage
	logger  *slog.Logger
	profile models.Profile
	mu      sync.RWMutex
}

// NewStore создает хранилище профиля
func NewStore(ps storage.ProfileStorage, logger *slog.Logger) *Store {
	return &Store{storage: ps, logger: logger}
}

// Load восстанавливает сохраненный профиль
func (s *Store) Load(ctx context.Context) error {
	p, err := s.storage.LoadProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
	return nil
}

// SetName задает отображаемое имя
func (s *Store) SetName(ctx context.Context, name string) error {
	return s.update(ctx, func(p *models.Profile) {
		p.Name = strings.TrimSpace(name)
	})
}

// Increment увеличивает счетчик опубликованных статей
func (s *Store) Increment(ctx context.Context) error {
	return s.update(ctx, func(p *models.Profile) {
		p.PublishedCount++
	})
}

// Decrement уменьшает счетчик, но не ниже нуля
func (s *Store) Decrement(ctx context.Context) error {
	return s.update(ctx, func(p *models.Profile) {
		p.PublishedCount = max(0, p.PublishedCount-1)
	})
}

// Name возвращает отображаемое имя
func (s *Store) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Name
}

// PublishedCount возвращает счетчик опубликованных статей
func (s *Store) PublishedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.PublishedCount
}

// Profile возвращает копию профиля
func (s *Store) Profile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// update применяет изменение и сохраняет профиль.
// При ошибке сохранения профиль в памяти не меняется.
func (s *Store) update(ctx context.Context, fn func(p *models.Profile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.profile
	fn(&next)

	if err := s.storage.SaveProfile(ctx, next); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	s.profile = next

	s.logger.Debug("Profile updated", "name", next.Name, "published_count", next.PublishedCount)
	return nil
}

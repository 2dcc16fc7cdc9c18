package tags

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/iudanet/articlekeeper/internal/client/storage"
	"github.com/iudanet/articlekeeper/internal/models"
)

// ErrEmptyLabel метка пуста после удаления пробелов
var ErrEmptyLabel = errors.New("tag label is empty")

// CatalogClient источник каталога меток
type CatalogClient interface {
	ListTags(ctx context.Context) ([]string, error)
}

// Store хранит каталог меток сервера и выбранные пользователем метки.
// Выбор не проверяется по каталогу.
type Store struct {
	client   CatalogClient
	sets     storage.SetStorage
	logger   *slog.Logger
	selected map[string]struct{}
	catalog  []string
	mu       sync.RWMutex
}

// NewStore создает хранилище меток
func NewStore(client CatalogClient, sets storage.SetStorage, logger *slog.Logger) *Store {
	return &Store{
		client:   client,
		sets:     sets,
		logger:   logger,
		selected: make(map[string]struct{}),
	}
}

// Load восстанавливает сохраненный выбор
func (s *Store) Load(ctx context.Context) error {
	values, err := s.sets.LoadSet(ctx, storage.KeySelectedTags)
	if err != nil {
		return fmt.Errorf("failed to load selected tags: %w", err)
	}

	s.mu.Lock()
	s.selected = models.SetOf(values)
	s.mu.Unlock()
	return nil
}

// LoadCatalog заменяет каталог ответом сервера.
// При ошибке каталог очищается.
func (s *Store) LoadCatalog(ctx context.Context) error {
	catalog, err := s.client.ListTags(ctx)
	if err != nil {
		s.mu.Lock()
		s.catalog = nil
		s.mu.Unlock()

		s.logger.Warn("Failed to load tag catalog", "error", err)
		return fmt.Errorf("failed to load tag catalog: %w", err)
	}

	s.mu.Lock()
	s.catalog = slices.Clone(catalog)
	s.mu.Unlock()

	s.logger.Info("Tag catalog loaded", "count", len(catalog))
	return nil
}

// Toggle добавляет или убирает метку из выбора и сохраняет выбор.
// Если сохранить не удалось, выбор возвращается в прежнее состояние.
func (s *Store) Toggle(ctx context.Context, label string) (bool, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return false, ErrEmptyLabel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, was := s.selected[label]
	if was {
		delete(s.selected, label)
	} else {
		s.selected[label] = struct{}{}
	}

	if err := s.sets.SaveSet(ctx, storage.KeySelectedTags, models.SortedKeys(s.selected)); err != nil {
		if was {
			s.selected[label] = struct{}{}
		} else {
			delete(s.selected, label)
		}
		return was, fmt.Errorf("failed to save selected tags: %w", err)
	}

	s.logger.Debug("Tag toggled", "label", label, "selected", !was)
	return !was, nil
}

// Selected возвращает выбранные метки в лексикографическом порядке
func (s *Store) Selected() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.SortedKeys(s.selected)
}

// SelectedSet возвращает копию множества выбранных меток
func (s *Store) SelectedSet() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.selected)
}

// IsSelected проверяет, выбрана ли метка
func (s *Store) IsSelected(label string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.selected[label]
	return ok
}

// Catalog возвращает копию каталога в порядке сервера
func (s *Store) Catalog() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.catalog)
}

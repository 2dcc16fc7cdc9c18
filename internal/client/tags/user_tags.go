package tags

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/iudanet/articlekeeper/internal/client/storage"
)

// UserTags собственные метки пользователя в порядке добавления
type UserTags struct {
	sets   storage.SetStorage
	logger *slog.Logger
	tags   []string
	mu     sync.RWMutex
}

// NewUserTags создает хранилище собственных меток
func NewUserTags(sets storage.SetStorage, logger *slog.Logger) *UserTags {
	return &UserTags{sets: sets, logger: logger}
}

// Load восстанавливает сохраненные метки
func (u *UserTags) Load(ctx context.Context) error {
	values, err := u.sets.LoadSet(ctx, storage.KeyUserTags)
	if err != nil {
		return fmt.Errorf("failed to load user tags: %w", err)
	}

	u.mu.Lock()
	u.tags = values
	u.mu.Unlock()
	return nil
}

// Add добавляет метку в конец списка. Повторное добавление ничего не меняет.
func (u *UserTags) Add(ctx context.Context, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyLabel
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if slices.Contains(u.tags, label) {
		return nil
	}

	next := append(slices.Clone(u.tags), label)
	if err := u.sets.SaveSet(ctx, storage.KeyUserTags, next); err != nil {
		return fmt.Errorf("failed to save user tags: %w", err)
	}
	u.tags = next

	u.logger.Debug("User tag added", "label", label)
	return nil
}

// Remove удаляет метку, если она есть
func (u *UserTags) Remove(ctx context.Context, label string) error {
	label = strings.TrimSpace(label)

	u.mu.Lock()
	defer u.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(u.tags), func(t string) bool { return t == label })
	if len(next) == len(u.tags) {
		return nil
	}

	if err := u.sets.SaveSet(ctx, storage.KeyUserTags, next); err != nil {
		return fmt.Errorf("failed to save user tags: %w", err)
	}
	u.tags = next

	u.logger.Debug("User tag removed", "label", label)
	return nil
}

// List возвращает копию списка меток
func (u *UserTags) List() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return slices.Clone(u.tags)
}

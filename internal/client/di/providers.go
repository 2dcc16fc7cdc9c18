package di

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/iudanet/articlekeeper/internal/client/api"
	"github.com/iudanet/articlekeeper/internal/client/app"
	"github.com/iudanet/articlekeeper/internal/client/articles"
	"github.com/iudanet/articlekeeper/internal/client/cache"
	"github.com/iudanet/articlekeeper/internal/client/config"
	"github.com/iudanet/articlekeeper/internal/client/likes"
	"github.com/iudanet/articlekeeper/internal/client/profile"
	"github.com/iudanet/articlekeeper/internal/client/storage"
	"github.com/iudanet/articlekeeper/internal/client/storage/badgerdb"
	"github.com/iudanet/articlekeeper/internal/client/storage/boltdb"
	"github.com/iudanet/articlekeeper/internal/client/tags"
	"github.com/iudanet/articlekeeper/internal/logger"
)

// StorageHandle оборачивает локальное хранилище для закрытия при Shutdown
type StorageHandle struct {
	storage.Storage
}

// Shutdown implements do.Shutdownable.
func (h *StorageHandle) Shutdown() error {
	return h.Close()
}

// ProvideLogger provides the structured logger.
// Логи клиента пишутся в stderr, stdout занят выводом команд.
func ProvideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[config.Config](i)

	return logger.New(logger.Config{
		Writer: os.Stderr,
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
	}), nil
}

// ProvideStorage открывает локальный кэш выбранного бэкенда
func ProvideStorage(i do.Injector) (*StorageHandle, error) {
	cfg := do.MustInvoke[config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)
	ctx := context.Background()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	var (
		s   storage.Storage
		err error
	)
	switch cfg.CacheBackend {
	case config.BackendBadger:
		s, err = badgerdb.New(ctx, cfg.DBPath)
	case config.BackendBolt:
		s, err = boltdb.New(ctx, cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
	if err != nil {
		return nil, err
	}

	log.Debug("Local cache opened", "backend", cfg.CacheBackend, "path", cfg.DBPath)
	return &StorageHandle{Storage: s}, nil
}

// ProvideClient provides the backend gateway client.
func ProvideClient(i do.Injector) (api.ClientAPI, error) {
	cfg := do.MustInvoke[config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	return api.NewClient(cfg.ServerURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log),
		api.WithRetry(cfg.RetryAttempts, cfg.RetryBaseDelay),
	)
}

// ProvideItemCache provides the bounded collection cache.
func ProvideItemCache(i do.Injector) (*cache.Bounded, error) {
	cfg := do.MustInvoke[config.Config](i)
	s := do.MustInvoke[*StorageHandle](i)

	return cache.NewBounded(s, cfg.CacheLimit), nil
}

// ProvideArticles provides the article and draft store.
func ProvideArticles(i do.Injector) (*articles.Store, error) {
	cfg := do.MustInvoke[config.Config](i)
	client := do.MustInvoke[api.ClientAPI](i)
	items := do.MustInvoke[*cache.Bounded](i)
	log := do.MustInvoke[*slog.Logger](i)

	return articles.NewStore(client, items, log.With("store", "articles"), articles.WithPageSize(cfg.PageSize)), nil
}

// ProvideTags provides the tag selection and catalog store.
func ProvideTags(i do.Injector) (*tags.Store, error) {
	client := do.MustInvoke[api.ClientAPI](i)
	s := do.MustInvoke[*StorageHandle](i)
	log := do.MustInvoke[*slog.Logger](i)

	return tags.NewStore(client, s, log.With("store", "tags")), nil
}

// ProvideUserTags provides the store of the user's own tag labels.
func ProvideUserTags(i do.Injector) (*tags.UserTags, error) {
	s := do.MustInvoke[*StorageHandle](i)
	log := do.MustInvoke[*slog.Logger](i)

	return tags.NewUserTags(s, log.With("store", "user_tags")), nil
}

// ProvideLikes provides the like store.
func ProvideLikes(i do.Injector) (*likes.Store, error) {
	s := do.MustInvoke[*StorageHandle](i)
	log := do.MustInvoke[*slog.Logger](i)

	return likes.NewStore(s, log.With("store", "likes")), nil
}

// ProvideProfile provides the user profile store.
func ProvideProfile(i do.Injector) (*profile.Store, error) {
	s := do.MustInvoke[*StorageHandle](i)
	log := do.MustInvoke[*slog.Logger](i)

	return profile.NewStore(s, log.With("store", "profile")), nil
}

// ProvideApp provides the session facade over all stores.
func ProvideApp(i do.Injector) (*app.App, error) {
	return app.New(
		do.MustInvoke[*articles.Store](i),
		do.MustInvoke[*tags.Store](i),
		do.MustInvoke[*tags.UserTags](i),
		do.MustInvoke[*likes.Store](i),
		do.MustInvoke[*profile.Store](i),
		do.MustInvoke[*slog.Logger](i),
	), nil
}

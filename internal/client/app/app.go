package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/iudanet/articlekeeper/internal/client/articles"
	"github.com/iudanet/articlekeeper/internal/client/likes"
	"github.com/iudanet/articlekeeper/internal/client/profile"
	"github.com/iudanet/articlekeeper/internal/client/tags"
	"github.com/iudanet/articlekeeper/internal/models"
)

// App связывает хранилища клиента.
// Публикация увеличивает счетчик профиля, снятие с публикации уменьшает его.
type App struct {
	Articles *articles.Store
	Tags     *tags.Store
	UserTags *tags.UserTags
	Likes    *likes.Store
	Profile  *profile.Store
	logger   *slog.Logger
}

// New создает App из готовых хранилищ
func New(
	articleStore *articles.Store,
	tagStore *tags.Store,
	userTags *tags.UserTags,
	likeStore *likes.Store,
	profileStore *profile.Store,
	logger *slog.Logger,
) *App {
	return &App{
		Articles: articleStore,
		Tags:     tagStore,
		UserTags: userTags,
		Likes:    likeStore,
		Profile:  profileStore,
		logger:   logger,
	}
}

// Load восстанавливает локальное состояние спутниковых хранилищ.
// Ошибки логируются: поврежденная запись не мешает работе с сервером.
func (a *App) Load(ctx context.Context) {
	loaders := map[string]func(context.Context) error{
		"tags":      a.Tags.Load,
		"user_tags": a.UserTags.Load,
		"likes":     a.Likes.Load,
		"profile":   a.Profile.Load,
	}
	for name, load := range loaders {
		if err := load(ctx); err != nil {
			a.logger.Warn("Failed to restore local state", "store", name, "error", err)
		}
	}
}

// Start восстанавливает локальное состояние, заполняет коллекции из кэша и
// запускает фоновое обновление статей и каталога меток.
// Канал закрывается, когда все фоновые запросы завершены.
func (a *App) Start(ctx context.Context) <-chan struct{} {
	a.Load(ctx)

	articlesDone := a.Articles.Start(ctx)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// каталог очищается при ошибке, ошибка уже в логе
		_ = a.Tags.LoadCatalog(ctx)
	}()
	go func() {
		wg.Wait()
		<-articlesDone
		close(done)
	}()
	return done
}

// Refresh обновляет ленту с учетом выбранных меток и черновики.
// Коллекции обновляются независимо, ошибки объединяются.
func (a *App) Refresh(ctx context.Context, query string) error {
	publishedErr := a.Articles.RefreshPublished(ctx, query, a.Tags.Selected())
	draftsErr := a.Articles.RefreshDrafts(ctx)
	return errors.Join(publishedErr, draftsErr)
}

// Feed возвращает ленту, отфильтрованную по выбранным меткам и строке поиска.
// favouritesOnly оставляет только статьи с лайком.
func (a *App) Feed(query string, favouritesOnly bool) []models.ContentItem {
	return a.Articles.Filtered(models.Filter{
		Tags:      a.Tags.SelectedSet(),
		Liked:     a.Likes.Set(),
		Query:     query,
		LikedOnly: favouritesOnly,
	})
}

// Publish публикует черновик и увеличивает счетчик профиля
func (a *App) Publish(ctx context.Context, id string) (models.ContentItem, error) {
	item, err := a.Articles.PublishDraft(ctx, id)
	if err != nil {
		return models.ContentItem{}, err
	}
	a.countPublished(ctx)
	return item, nil
}

// Unpublish снимает статью с публикации и уменьшает счетчик профиля
func (a *App) Unpublish(ctx context.Context, id string) (models.ContentItem, error) {
	item, err := a.Articles.UnpublishArticle(ctx, id)
	if err != nil {
		return models.ContentItem{}, err
	}
	if err := a.Profile.Decrement(ctx); err != nil {
		a.logger.Warn("Failed to update published counter", "error", err)
	}
	return item, nil
}

// CreateAndPublish создает и публикует статью.
// Если публикация не удалась, возвращается черновик и ошибка.
func (a *App) CreateAndPublish(ctx context.Context, input models.DraftInput) (models.ContentItem, error) {
	item, err := a.Articles.CreateAndPublish(ctx, input)
	if err != nil {
		return item, err
	}
	a.countPublished(ctx)
	return item, nil
}

// SaveAndPublish сохраняет и публикует черновик
func (a *App) SaveAndPublish(ctx context.Context, id string, input models.DraftInput) (models.ContentItem, error) {
	item, err := a.Articles.SaveAndPublish(ctx, id, input)
	if err != nil {
		return item, err
	}
	a.countPublished(ctx)
	return item, nil
}

func (a *App) countPublished(ctx context.Context) {
	if err := a.Profile.Increment(ctx); err != nil {
		a.logger.Warn("Failed to update published counter", "error", err)
	}
}

package articles

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	httpClient "github.com/iudanet/articlekeeper/internal/client/api"
	"github.com/iudanet/articlekeeper/internal/client/storage"
	"github.com/iudanet/articlekeeper/internal/models"
)

//go:generate moq -out cache_mock.go . ItemCache

// ItemCache ограниченный локальный кэш коллекций (см. cache.Bounded)
type ItemCache interface {
	Save(ctx context.Context, key string, items []models.ContentItem) error
	Load(ctx context.Context, key string) ([]models.ContentItem, error)
}

// Failure последняя неудачная операция хранилища
type Failure struct {
	At  time.Time
	Err error
	Op  string
	ID  string
}

// Snapshot согласованная копия состояния хранилища
type Snapshot struct {
	RefreshedAt time.Time // время последнего успешного обновления ленты
	LastFailure *Failure  // nil, если последняя операция успешна
	Published   []models.ContentItem
	Drafts      []models.ContentItem
}

// Store владеет коллекциями опубликованных статей и черновиков.
//
// Обновление заменяет коллекцию целиком ответом сервера; локальные
// изменения, не подтвержденные сервером, при этом теряются.
// Переходы (create, publish, unpublish) вставляют элемент в начало коллекции.
// Любая ошибка оставляет обе коллекции без изменений.
//
// Мутации одного id сериализуются; обновления с мутациями не сериализуются,
// последний пришедший ответ побеждает.
type Store struct {
	client    httpClient.ClientAPI
	cache     ItemCache
	logger    *slog.Logger
	guard     *inflightGuard
	pending   map[string]models.LifecycleState
	now       func() time.Time
	lastError *Failure
	refreshed time.Time
	published []models.ContentItem
	drafts    []models.ContentItem
	pageSize  int
	mu        sync.RWMutex
	persistMu sync.Mutex
}

// Option настраивает Store
type Option func(*Store)

// WithPageSize задает размер страницы ленты
func WithPageSize(size int) Option {
	return func(s *Store) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// NewStore создает хранилище статей
func NewStore(client httpClient.ClientAPI, cache ItemCache, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		client:   client,
		cache:    cache,
		logger:   logger,
		guard:    newInflightGuard(),
		pending:  make(map[string]models.LifecycleState),
		now:      time.Now,
		pageSize: httpClient.DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start заполняет коллекции из кэша и запускает фоновое обновление с сервера.
// Возвращаемый канал закрывается, когда фоновое обновление завершено.
func (s *Store) Start(ctx context.Context) <-chan struct{} {
	s.Seed(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		// ошибки уже записаны в LastFailure и лог
		_ = s.RefreshDrafts(ctx)
		_ = s.RefreshPublished(ctx, "", nil)
	}()
	return done
}

// Seed загружает последние сохраненные коллекции из кэша.
// Ошибки кэша не фатальны: коллекция остается пустой.
func (s *Store) Seed(ctx context.Context) {
	published, err := s.cache.Load(ctx, storage.KeyCachedPosts)
	if err != nil {
		s.logger.Warn("Failed to load cached posts", "error", err)
		published = nil
	}

	drafts, err := s.cache.Load(ctx, storage.KeyCachedDrafts)
	if err != nil {
		s.logger.Warn("Failed to load cached drafts", "error", err)
		drafts = nil
	}

	s.mu.Lock()
	s.published = published
	s.drafts = withoutIDs(drafts, idsOf(published))
	seededDrafts := len(s.drafts)
	s.mu.Unlock()

	s.logger.Info("Seeded from cache", "posts", len(published), "drafts", seededDrafts)
}

// RefreshPublished заменяет ленту ответом сервера.
// Черновики с id из ответа удаляются, так как сервер считает их опубликованными.
func (s *Store) RefreshPublished(ctx context.Context, query string, tags []string) error {
	const op = "refresh published"

	selected := slices.Clone(tags)
	slices.Sort(selected)

	page, err := s.client.ListPosts(ctx, httpClient.PostQuery{
		Query: query,
		Tags:  selected,
		Size:  s.pageSize,
	})
	if err != nil {
		return s.fail(op, "", err)
	}

	items := models.FromAPIList(page.Items)

	s.mu.Lock()
	s.published = items
	s.drafts = withoutIDs(s.drafts, idsOf(items))
	s.refreshed = s.now()
	s.lastError = nil
	s.mu.Unlock()

	s.persist(ctx)
	s.logger.Info("Published refreshed", "count", len(items), "total", page.Total)
	return nil
}

// RefreshDrafts заменяет черновики ответом сервера
func (s *Store) RefreshDrafts(ctx context.Context) error {
	const op = "refresh drafts"

	page, err := s.client.ListDrafts(ctx)
	if err != nil {
		return s.fail(op, "", err)
	}

	items := models.FromAPIList(page.Items)

	s.mu.Lock()
	s.drafts = items
	s.published = withoutIDs(s.published, idsOf(items))
	s.lastError = nil
	s.mu.Unlock()

	s.persist(ctx)
	s.logger.Info("Drafts refreshed", "count", len(items))
	return nil
}

// CreateDraft создает черновик и вставляет ответ сервера в начало черновиков
func (s *Store) CreateDraft(ctx context.Context, input models.DraftInput) (models.ContentItem, error) {
	const op = "create draft"

	resp, err := s.client.CreateDraft(ctx, input.ToDraftRequest())
	if err != nil {
		return models.ContentItem{}, s.fail(op, "", err)
	}

	item := models.FromAPI(*resp)

	s.mu.Lock()
	s.drafts = prepend(withoutIDs(s.drafts, idSet(item.ID)), item)
	s.published = withoutIDs(s.published, idSet(item.ID))
	s.lastError = nil
	s.mu.Unlock()

	s.persist(ctx)
	s.logger.Info("Draft created", "id", item.ID)
	return item.Clone(), nil
}

// EditDraft заменяет черновик ответом сервера, сохраняя его позицию
func (s *Store) EditDraft(ctx context.Context, id string, input models.DraftInput) (models.ContentItem, error) {
	release, err := s.guard.acquire(ctx, id)
	if err != nil {
		return models.ContentItem{}, s.fail("edit draft", id, err)
	}
	defer release()

	return s.editDraft(ctx, id, input)
}

func (s *Store) editDraft(ctx context.Context, id string, input models.DraftInput) (models.ContentItem, error) {
	const op = "edit draft"

	resp, err := s.client.EditDraft(ctx, id, input.ToDraftRequest())
	if err != nil {
		return models.ContentItem{}, s.fail(op, id, err)
	}

	item := models.FromAPI(*resp)

	s.mu.Lock()
	if i := indexOf(s.drafts, id); i >= 0 {
		drafts := slices.Clone(s.drafts)
		drafts[i] = item
		s.drafts = drafts
	} else {
		// черновик мог исчезнуть после обновления, возвращаем его в начало
		s.drafts = prepend(s.drafts, item)
	}
	s.published = withoutIDs(s.published, idSet(id))
	s.lastError = nil
	s.mu.Unlock()

	s.persist(ctx)
	s.logger.Info("Draft edited", "id", id)
	return item.Clone(), nil
}

// DeleteDraft удаляет черновик. При ошибке черновик остается на месте.
func (s *Store) DeleteDraft(ctx context.Context, id string) error {
	const op = "delete draft"

	release, err := s.guard.acquire(ctx, id)
	if err != nil {
		return s.fail(op, id, err)
	}
	defer release()

	if err := s.client.DeleteDraft(ctx, id); err != nil {
		return s.fail(op, id, err)
	}

	s.mu.Lock()
	s.drafts = withoutIDs(s.drafts, idSet(id))
	s.lastError = nil
	s.mu.Unlock()

	s.persist(ctx)
	s.logger.Info("Draft deleted", "id", id)
	return nil
}

// PublishDraft переносит черновик в начало ленты
func (s *Store) PublishDraft(ctx context.Context, id string) (models.ContentItem, error) {
	release, err := s.guard.acquire(ctx, id)
	if err != nil {
		return models.ContentItem{}, s.fail("publish draft", id, err)
	}
	defer release()

	return s.publishDraft(ctx, id)
}

func (s *Store) publishDraft(ctx context.Context, id string) (models.ContentItem, error) {
	const op = "publish draft"

	resp, err := s.client.PublishDraft(ctx, id)
	if err != nil {
		return models.ContentItem{}, s.fail(op, id, err)
	}

	item := models.FromAPI(*resp)
	moved := idSet(id, item.ID)

	s.mu.Lock()
	s.drafts = withoutIDs(s.drafts, moved)
	s.published = prepend(withoutIDs(s.published, moved), item)
	s.lastError = nil
	s.mu.Unlock()

	s.persist(ctx)
	s.logger.Info("Draft published", "id", id)
	return item.Clone(), nil
}

// UnpublishArticle переносит статью в начало черновиков
func (s *Store) UnpublishArticle(ctx context.Context, id string) (models.ContentItem, error) {
	const op = "unpublish article"

	release, err := s.guard.acquire(ctx, id)
	if err != nil {
		return models.ContentItem{}, s.fail(op, id, err)
	}
	defer release()

	s.setPending(id, models.StateUnpublishing)
	defer s.setPending(id, "")

	resp, err := s.client.UnpublishPost(ctx, id)
	if err != nil {
		return models.ContentItem{}, s.fail(op, id, err)
	}

	item := models.FromAPI(*resp)
	moved := idSet(id, item.ID)

	s.mu.Lock()
	s.published = withoutIDs(s.published, moved)
	s.drafts = prepend(withoutIDs(s.drafts, moved), item)
	s.lastError = nil
	s.mu.Unlock()

	s.persist(ctx)
	s.logger.Info("Article unpublished", "id", id)
	return item.Clone(), nil
}

// CreateAndPublish создает черновик и сразу публикует его.
// Если публикация не удалась, возвращается созданный черновик вместе с ошибкой;
// черновик остается в коллекции черновиков.
func (s *Store) CreateAndPublish(ctx context.Context, input models.DraftInput) (models.ContentItem, error) {
	draft, err := s.CreateDraft(ctx, input)
	if err != nil {
		return models.ContentItem{}, err
	}

	published, err := s.PublishDraft(ctx, draft.ID)
	if err != nil {
		return draft, err
	}
	return published, nil
}

// SaveAndPublish сохраняет изменения черновика и публикует его.
// Оба шага выполняются под одной блокировкой id.
func (s *Store) SaveAndPublish(ctx context.Context, id string, input models.DraftInput) (models.ContentItem, error) {
	release, err := s.guard.acquire(ctx, id)
	if err != nil {
		return models.ContentItem{}, s.fail("save and publish", id, err)
	}
	defer release()

	draft, err := s.editDraft(ctx, id, input)
	if err != nil {
		return models.ContentItem{}, err
	}

	published, err := s.publishDraft(ctx, id)
	if err != nil {
		return draft, err
	}
	return published, nil
}

// GetPost получает статью с сервера без изменения коллекций
func (s *Store) GetPost(ctx context.Context, id string) (models.ContentItem, error) {
	resp, err := s.client.GetPost(ctx, id)
	if err != nil {
		return models.ContentItem{}, s.fail("get post", id, err)
	}
	return models.FromAPI(*resp), nil
}

// GetDraft получает черновик с сервера без изменения коллекций
func (s *Store) GetDraft(ctx context.Context, id string) (models.ContentItem, error) {
	resp, err := s.client.GetDraft(ctx, id)
	if err != nil {
		return models.ContentItem{}, s.fail("get draft", id, err)
	}
	return models.FromAPI(*resp), nil
}

// Published возвращает копию ленты в текущем порядке
func (s *Store) Published() []models.ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneItems(s.published)
}

// Drafts возвращает копию черновиков в текущем порядке
func (s *Store) Drafts() []models.ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneItems(s.drafts)
}

// Filtered применяет фильтр к ленте, не изменяя ее
func (s *Store) Filtered(f models.Filter) []models.ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return f.Apply(s.published)
}

// StateOf возвращает состояние элемента с учетом операций в процессе
func (s *Store) StateOf(id string) (models.LifecycleState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if state, ok := s.pending[id]; ok {
		return state, true
	}
	if indexOf(s.published, id) >= 0 {
		return models.StatePublished, true
	}
	if indexOf(s.drafts, id) >= 0 {
		return models.StateDraft, true
	}
	return "", false
}

func (s *Store) setPending(id string, state models.LifecycleState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state == "" {
		delete(s.pending, id)
		return
	}
	s.pending[id] = state
}

// Snapshot возвращает согласованную копию состояния
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Published:   models.CloneItems(s.published),
		Drafts:      models.CloneItems(s.drafts),
		RefreshedAt: s.refreshed,
	}
	if s.lastError != nil {
		failure := *s.lastError
		snap.LastFailure = &failure
	}
	return snap
}

// fail записывает ошибку для отображения и возвращает ее обернутой
func (s *Store) fail(op, id string, err error) error {
	s.logger.Warn("Operation failed", "op", op, "id", id, "error", err)

	s.mu.Lock()
	s.lastError = &Failure{Op: op, ID: id, Err: err, At: s.now()}
	s.mu.Unlock()

	return fmt.Errorf("failed to %s: %w", op, err)
}

// persist сохраняет первые K элементов обеих коллекций.
// Ошибка кэша не отменяет успешную операцию.
func (s *Store) persist(ctx context.Context) {
	// снимок и запись под одним мьютексом: в кэш попадает самое свежее состояние
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.RLock()
	published := slices.Clone(s.published)
	drafts := slices.Clone(s.drafts)
	s.mu.RUnlock()

	ctx = context.WithoutCancel(ctx)
	if err := s.cache.Save(ctx, storage.KeyCachedPosts, published); err != nil {
		s.logger.Warn("Failed to cache posts", "error", err)
	}
	if err := s.cache.Save(ctx, storage.KeyCachedDrafts, drafts); err != nil {
		s.logger.Warn("Failed to cache drafts", "error", err)
	}
}

func indexOf(items []models.ContentItem, id string) int {
	return slices.IndexFunc(items, func(item models.ContentItem) bool {
		return item.ID == id
	})
}

// prepend возвращает новый слайс с item в начале
func prepend(items []models.ContentItem, item models.ContentItem) []models.ContentItem {
	out := make([]models.ContentItem, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// withoutIDs возвращает новый слайс без элементов с id из ids
func withoutIDs(items []models.ContentItem, ids map[string]struct{}) []models.ContentItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]models.ContentItem, 0, len(items))
	for _, item := range items {
		if _, drop := ids[item.ID]; !drop {
			out = append(out, item)
		}
	}
	return out
}

func idsOf(items []models.ContentItem) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item.ID] = struct{}{}
	}
	return set
}

func idSet(ids ...string) map[string]struct{} {
	return models.SetOf(ids)
}

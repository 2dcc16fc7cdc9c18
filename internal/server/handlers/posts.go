package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/articlekeeper/internal/models"
	"github.com/iudanet/articlekeeper/internal/server/storage"
	"github.com/iudanet/articlekeeper/pkg/api"
)

// Ограничения пагинации ленты
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PostsHandler обрабатывает запросы к /posts и /tags
type PostsHandler struct {
	logger  *slog.Logger
	storage storage.ArticleStorage
	now     func() time.Time
}

// NewPostsHandler создает handler опубликованных статей
func NewPostsHandler(logger *slog.Logger, s storage.ArticleStorage) *PostsHandler {
	return &PostsHandler{
		logger:  logger,
		storage: s,
		now:     time.Now,
	}
}

// List обрабатывает GET /posts?query=&tag=&size=&page=
// tag содержит одну или несколько меток через пробел, статья подходит при совпадении любой.
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	size, err := intParam(q.Get("size"), DefaultPageSize)
	if err != nil || size <= 0 || size > MaxPageSize {
		sendError(h.logger, w, "size must be between 1 and "+strconv.Itoa(MaxPageSize), http.StatusBadRequest)
		return
	}
	page, err := intParam(q.Get("page"), 0)
	if err != nil || page < 0 {
		sendError(h.logger, w, "page must be a non-negative integer", http.StatusBadRequest)
		return
	}

	filter := storage.ArticleFilter{
		Status: api.StatusPublished,
		Query:  q.Get("query"),
		Tags:   strings.Fields(q.Get("tag")),
		Limit:  size,
		Offset: page * size,
	}

	posts, total, err := h.storage.ListArticles(r.Context(), filter)
	if err != nil {
		sendStorageError(h.logger, r, w, err, "")
		return
	}

	h.logger.DebugContext(r.Context(), "posts listed",
		slog.Int("count", len(posts)),
		slog.Int("total", total))
	sendJSON(h.logger, w, api.ItemPage{Items: models.ArticlesToAPI(posts), Total: total}, http.StatusOK)
}

// Get обрабатывает GET /posts/{id}
func (h *PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.storage.GetArticle(r.Context(), chi.URLParam(r, "id"), api.StatusPublished)
	if err != nil {
		sendStorageError(h.logger, r, w, err, "post not found")
		return
	}

	sendJSON(h.logger, w, post.ToAPI(), http.StatusOK)
}

// Unpublish обрабатывает POST /posts/{id}/unpublish.
// Статья возвращается в черновики с тем же id.
func (h *PostsHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	draft, err := h.storage.SetStatus(r.Context(), id, api.StatusPublished, api.StatusDraft, h.now())
	if err != nil {
		sendStorageError(h.logger, r, w, err, "post not found")
		return
	}

	h.logger.InfoContext(r.Context(), "post unpublished", slog.String("id", id))
	sendJSON(h.logger, w, draft.ToAPI(), http.StatusOK)
}

// Tags обрабатывает GET /tags
func (h *PostsHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.storage.ListTags(r.Context())
	if err != nil {
		sendStorageError(h.logger, r, w, err, "")
		return
	}

	sendJSON(h.logger, w, api.TagList{Items: tags}, http.StatusOK)
}

func intParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

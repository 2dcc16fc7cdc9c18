package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/articlekeeper/internal/models"
	"github.com/iudanet/articlekeeper/internal/server/storage"
	"github.com/iudanet/articlekeeper/internal/validation"
	"github.com/iudanet/articlekeeper/pkg/api"
)

// DraftsHandler обрабатывает запросы к /drafts
type DraftsHandler struct {
	logger    *slog.Logger
	storage   storage.ArticleStorage
	validator *validation.Validator
	now       func() time.Time
}

// NewDraftsHandler создает handler черновиков
func NewDraftsHandler(logger *slog.Logger, s storage.ArticleStorage, v *validation.Validator) *DraftsHandler {
	return &DraftsHandler{
		logger:    logger,
		storage:   s,
		validator: v,
		now:       time.Now,
	}
}

// draftPatch тело PATCH: отсутствующие поля не меняются
type draftPatch struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// List обрабатывает GET /drafts
func (h *DraftsHandler) List(w http.ResponseWriter, r *http.Request) {
	drafts, total, err := h.storage.ListArticles(r.Context(), storage.ArticleFilter{Status: api.StatusDraft})
	if err != nil {
		sendStorageError(h.logger, r, w, err, "")
		return
	}

	sendJSON(h.logger, w, api.ItemPage{Items: models.ArticlesToAPI(drafts), Total: total}, http.StatusOK)
}

// Get обрабатывает GET /drafts/{id}
func (h *DraftsHandler) Get(w http.ResponseWriter, r *http.Request) {
	draft, err := h.storage.GetArticle(r.Context(), chi.URLParam(r, "id"), api.StatusDraft)
	if err != nil {
		sendStorageError(h.logger, r, w, err, "draft not found")
		return
	}

	sendJSON(h.logger, w, draft.ToAPI(), http.StatusOK)
}

// Create обрабатывает POST /drafts
func (h *DraftsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.DraftRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode draft request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(req); err != nil {
		sendStorageError(h.logger, r, w, err, "")
		return
	}

	now := h.now()
	draft := &models.Article{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		Status:    api.StatusDraft,
		Tags:      req.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.storage.CreateArticle(ctx, draft); err != nil {
		sendStorageError(h.logger, r, w, err, "")
		return
	}

	// повторное чтение отдает метки без повторов
	created, err := h.storage.GetArticle(ctx, draft.ID, api.StatusDraft)
	if err != nil {
		sendStorageError(h.logger, r, w, err, "draft not found")
		return
	}

	h.logger.InfoContext(ctx, "draft created", slog.String("id", draft.ID))
	sendJSON(h.logger, w, created.ToAPI(), http.StatusCreated)
}

// Update обрабатывает PATCH /drafts/{id}
func (h *DraftsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var patch draftPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		h.logger.WarnContext(ctx, "failed to decode draft patch", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	draft, err := h.storage.GetArticle(ctx, id, api.StatusDraft)
	if err != nil {
		sendStorageError(h.logger, r, w, err, "draft not found")
		return
	}

	if patch.Title != nil {
		draft.Title = *patch.Title
	}
	if patch.Content != nil {
		draft.Content = *patch.Content
	}
	if patch.Tags != nil {
		draft.Tags = *patch.Tags
	}

	req := api.DraftRequest{Title: draft.Title, Content: draft.Content, Tags: draft.Tags}
	if err := h.validator.Validate(req); err != nil {
		sendStorageError(h.logger, r, w, err, "")
		return
	}

	draft.UpdatedAt = h.now()
	if err := h.storage.UpdateArticle(ctx, draft); err != nil {
		sendStorageError(h.logger, r, w, err, "draft not found")
		return
	}

	updated, err := h.storage.GetArticle(ctx, id, api.StatusDraft)
	if err != nil {
		sendStorageError(h.logger, r, w, err, "draft not found")
		return
	}

	h.logger.InfoContext(ctx, "draft updated", slog.String("id", id))
	sendJSON(h.logger, w, updated.ToAPI(), http.StatusOK)
}

// Delete обрабатывает DELETE /drafts/{id}
func (h *DraftsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.storage.DeleteArticle(r.Context(), id, api.StatusDraft); err != nil {
		sendStorageError(h.logger, r, w, err, "draft not found")
		return
	}

	h.logger.InfoContext(r.Context(), "draft deleted", slog.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}

// Publish обрабатывает POST /drafts/{id}/publish
func (h *DraftsHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.storage.SetStatus(r.Context(), id, api.StatusDraft, api.StatusPublished, h.now())
	if err != nil {
		sendStorageError(h.logger, r, w, err, "draft not found")
		return
	}

	h.logger.InfoContext(r.Context(), "draft published", slog.String("id", id))
	sendJSON(h.logger, w, post.ToAPI(), http.StatusOK)
}

package models

import (
	"slices"
	"time"

	"github.com/iudanet/articlekeeper/pkg/api"
)

// Article представляет запись статьи на стороне dev-сервера
type Article struct {
	CreatedAt   time.Time  `json:"created_at"`   // время создания
	UpdatedAt   time.Time  `json:"updated_at"`   // время последнего изменения
	PublishedAt *time.Time `json:"published_at"` // nil, пока статья не опубликована
	ID          string     `json:"id"`           // UUID статьи
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Status      string     `json:"status"` // api.StatusDraft или api.StatusPublished
	Tags        []string   `json:"tags"`
}

// ToAPI конвертирует запись в формат ответа API.
// Временные метки отдаются в RFC3339, published_at только для опубликованных.
func (a *Article) ToAPI() api.Item {
	tags := slices.Clone(a.Tags)
	if tags == nil {
		tags = []string{}
	}
	item := api.Item{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Status:    a.Status,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339),
		Tags:      tags,
	}
	if a.Status == api.StatusPublished && a.PublishedAt != nil {
		published := a.PublishedAt.UTC().Format(time.RFC3339)
		item.PublishedAt = &published
	}
	return item
}

// ArticlesToAPI конвертирует список, сохраняя порядок
func ArticlesToAPI(articles []*Article) []api.Item {
	out := make([]api.Item, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ToAPI())
	}
	return out
}

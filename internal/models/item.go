package models

import (
	"slices"
	"time"

	"github.com/iudanet/articlekeeper/pkg/api"
)

// LifecycleState определяет, в какой коллекции находится элемент
type LifecycleState string

const (
	// StateDraft черновик, виден только автору
	StateDraft LifecycleState = "draft"
	// StatePublished опубликованная статья
	StatePublished LifecycleState = "published"
	// StateUnpublishing снятие с публикации в процессе; только в памяти, не сохраняется
	StateUnpublishing LifecycleState = "unpublishing"
)

// ContentItem представляет черновик или опубликованную статью.
// ID присваивается сервером и не меняется при переходах draft <-> published.
// Временные метки хранятся как непрозрачные строки и только отображаются.
type ContentItem struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	State       LifecycleState `json:"state"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	PublishedAt string         `json:"published_at,omitempty"` // пусто, если State != StatePublished
	Tags        []string       `json:"tags"`
}

// CachedItem элемент локального кэша вместе с временем снимка
type CachedItem struct {
	CapturedAt time.Time   `json:"captured_at"`
	Item       ContentItem `json:"item"`
}

// DraftInput поля черновика, которые редактирует пользователь
type DraftInput struct {
	Title string
	Body  string
	Tags  []string
}

// IsDraft возвращает true для черновиков
func (i ContentItem) IsDraft() bool {
	return i.State == StateDraft
}

// HasTag проверяет наличие метки у элемента
func (i ContentItem) HasTag(label string) bool {
	for _, t := range i.Tags {
		if t == label {
			return true
		}
	}
	return false
}

// Clone возвращает копию элемента с отдельным слайсом тегов
func (i ContentItem) Clone() ContentItem {
	c := i
	if i.Tags != nil {
		c.Tags = make([]string, len(i.Tags))
		copy(c.Tags, i.Tags)
	}
	return c
}

// FromAPI конвертирует ответ сервера в доменную модель.
// Неизвестный статус трактуется как черновик.
func FromAPI(item api.Item) ContentItem {
	state := StateDraft
	if item.Status == api.StatusPublished {
		state = StatePublished
	}

	out := ContentItem{
		ID:        item.ID,
		Title:     item.Title,
		Body:      item.Content,
		State:     state,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
		Tags:      slices.Clone(item.Tags),
	}
	if state == StatePublished && item.PublishedAt != nil {
		out.PublishedAt = *item.PublishedAt
	}
	return out
}

// FromAPIList конвертирует список, сохраняя порядок сервера
func FromAPIList(items []api.Item) []ContentItem {
	out := make([]ContentItem, 0, len(items))
	for _, item := range items {
		out = append(out, FromAPI(item))
	}
	return out
}

// ToDraftRequest формирует тело запроса для create/edit
func (in DraftInput) ToDraftRequest() api.DraftRequest {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return api.DraftRequest{
		Title:   in.Title,
		Content: in.Body,
		Tags:    tags,
	}
}

// CloneItems копирует слайс элементов
func CloneItems(items []ContentItem) []ContentItem {
	if len(items) == 0 {
		return nil
	}
	dup := make([]ContentItem, len(items))
	for i, item := range items {
		dup[i] = item.Clone()
	}
	return dup
}

package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/iudanet/articlekeeper/pkg/api"
)

// Имена ресурсов сервера
const (
	ResourcePosts  = "posts"
	ResourceDrafts = "drafts"
	ResourceTags   = "tags"
)

// Глаголы переходов жизненного цикла
const (
	ActionPublish   = "publish"
	ActionUnpublish = "unpublish"
)

// DefaultPageSize размер страницы ленты по умолчанию
const DefaultPageSize = 20

// PostQuery параметры выборки опубликованных статей
type PostQuery struct {
	Query string
	Tags  []string
	Size  int
	Page  int
}

// Values кодирует запрос в query string.
// Теги передаются одним параметром через пробел.
func (q PostQuery) Values() url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(q.Query); s != "" {
		v.Set("query", s)
	}
	if len(q.Tags) > 0 {
		v.Set("tag", strings.Join(q.Tags, " "))
	}
	size := q.Size
	if size <= 0 {
		size = DefaultPageSize
	}
	page := q.Page
	if page < 0 {
		page = 0
	}
	v.Set("size", strconv.Itoa(size))
	v.Set("page", strconv.Itoa(page))
	return v
}

// itemPage проверяет, что поле items присутствует в ответе
type itemPage struct {
	Items *[]api.Item `json:"items"`
	Total int         `json:"total"`
}

func (p *itemPage) validate() error {
	if p.Items == nil {
		return errors.New("response has no items field")
	}
	for i, item := range *p.Items {
		if item.ID == "" {
			return errors.New("item " + strconv.Itoa(i) + " has no id")
		}
	}
	return nil
}

type itemEnvelope struct {
	api.Item
}

func (e *itemEnvelope) validate() error {
	if e.ID == "" {
		return errors.New("item has no id")
	}
	return nil
}

type tagList struct {
	Items *[]string `json:"items"`
}

func (l *tagList) validate() error {
	if l.Items == nil {
		return errors.New("response has no items field")
	}
	return nil
}

// List выполняет GET /{resource}?query
func (c *Client) List(ctx context.Context, resource string, query url.Values) (*api.ItemPage, error) {
	op := "list " + resource
	target, err := c.resolve(resource)
	if err != nil {
		return nil, newError(op, KindInvalidTarget, err)
	}
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var page itemPage
	if err := c.doRequest(ctx, op, http.MethodGet, target, nil, &page); err != nil {
		return nil, err
	}
	return &api.ItemPage{Items: *page.Items, Total: page.Total}, nil
}

// GetOne выполняет GET /{resource}/{id}
func (c *Client) GetOne(ctx context.Context, resource, id string) (*api.Item, error) {
	return c.itemRequest(ctx, "get "+resource, http.MethodGet, nil, resource, id)
}

// Create выполняет POST /{resource}
func (c *Client) Create(ctx context.Context, resource string, body any) (*api.Item, error) {
	return c.itemRequest(ctx, "create "+resource, http.MethodPost, body, resource)
}

// Update выполняет PATCH /{resource}/{id}
func (c *Client) Update(ctx context.Context, resource, id string, body any) (*api.Item, error) {
	return c.itemRequest(ctx, "update "+resource, http.MethodPatch, body, resource, id)
}

// Action выполняет POST /{resource}/{id}/{verb} с пустым JSON объектом
func (c *Client) Action(ctx context.Context, resource, id, verb string) (*api.Item, error) {
	return c.itemRequest(ctx, verb+" "+resource, http.MethodPost, api.EmptyRequest{}, resource, id, verb)
}

// Remove выполняет DELETE /{resource}/{id}. Тело ответа игнорируется.
func (c *Client) Remove(ctx context.Context, resource, id string) error {
	op := "delete " + resource
	target, err := c.resolve(resource, id)
	if err != nil {
		return newError(op, KindInvalidTarget, err)
	}
	return c.doRequest(ctx, op, http.MethodDelete, target, nil, nil)
}

func (c *Client) itemRequest(ctx context.Context, op, method string, body any, resource string, segments ...string) (*api.Item, error) {
	target, err := c.resolve(resource, segments...)
	if err != nil {
		return nil, newError(op, KindInvalidTarget, err)
	}

	var env itemEnvelope
	if err := c.doRequest(ctx, op, method, target, body, &env); err != nil {
		return nil, err
	}
	item := env.Item
	return &item, nil
}

// ListPosts получает страницу опубликованных статей
func (c *Client) ListPosts(ctx context.Context, q PostQuery) (*api.ItemPage, error) {
	return c.List(ctx, ResourcePosts, q.Values())
}

// ListDrafts получает черновики
func (c *Client) ListDrafts(ctx context.Context) (*api.ItemPage, error) {
	return c.List(ctx, ResourceDrafts, nil)
}

// GetPost получает опубликованную статью
func (c *Client) GetPost(ctx context.Context, id string) (*api.Item, error) {
	return c.GetOne(ctx, ResourcePosts, id)
}

// GetDraft получает черновик
func (c *Client) GetDraft(ctx context.Context, id string) (*api.Item, error) {
	return c.GetOne(ctx, ResourceDrafts, id)
}

// CreateDraft создаёт черновик
func (c *Client) CreateDraft(ctx context.Context, req api.DraftRequest) (*api.Item, error) {
	return c.Create(ctx, ResourceDrafts, req)
}

// EditDraft обновляет черновик
func (c *Client) EditDraft(ctx context.Context, id string, req api.DraftRequest) (*api.Item, error) {
	return c.Update(ctx, ResourceDrafts, id, req)
}

// DeleteDraft удаляет черновик
func (c *Client) DeleteDraft(ctx context.Context, id string) error {
	return c.Remove(ctx, ResourceDrafts, id)
}

// PublishDraft публикует черновик
func (c *Client) PublishDraft(ctx context.Context, id string) (*api.Item, error) {
	return c.Action(ctx, ResourceDrafts, id, ActionPublish)
}

// UnpublishPost снимает статью с публикации
func (c *Client) UnpublishPost(ctx context.Context, id string) (*api.Item, error) {
	return c.Action(ctx, ResourcePosts, id, ActionUnpublish)
}

// ListTags получает каталог меток
func (c *Client) ListTags(ctx context.Context) ([]string, error) {
	op := "list tags"
	target, err := c.resolve(ResourceTags)
	if err != nil {
		return nil, newError(op, KindInvalidTarget, err)
	}

	var list tagList
	if err := c.doRequest(ctx, op, http.MethodGet, target, nil, &list); err != nil {
		return nil, err
	}
	return *list.Items, nil
}

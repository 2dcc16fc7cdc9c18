package api

import (
	"context"

	"github.com/iudanet/articlekeeper/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI операции сервера статей, используемые хранилищами клиента
type ClientAPI interface {
	ListPosts(ctx context.Context, q PostQuery) (*api.ItemPage, error)
	ListDrafts(ctx context.Context) (*api.ItemPage, error)
	GetPost(ctx context.Context, id string) (*api.Item, error)
	GetDraft(ctx context.Context, id string) (*api.Item, error)
	CreateDraft(ctx context.Context, req api.DraftRequest) (*api.Item, error)
	EditDraft(ctx context.Context, id string, req api.DraftRequest) (*api.Item, error)
	DeleteDraft(ctx context.Context, id string) error
	PublishDraft(ctx context.Context, id string) (*api.Item, error)
	UnpublishPost(ctx context.Context, id string) (*api.Item, error)
	ListTags(ctx context.Context) ([]string, error)
}

var _ ClientAPI = (*Client)(nil)

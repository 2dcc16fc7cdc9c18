package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/articlekeeper/internal/client/api"
	"github.com/iudanet/articlekeeper/internal/client/articles"
	"github.com/iudanet/articlekeeper/internal/client/cache"
	"github.com/iudanet/articlekeeper/internal/client/likes"
	"github.com/iudanet/articlekeeper/internal/client/profile"
	"github.com/iudanet/articlekeeper/internal/client/storage/badgerdb"
	"github.com/iudanet/articlekeeper/internal/client/tags"
	"github.com/iudanet/articlekeeper/internal/models"
	"github.com/iudanet/articlekeeper/pkg/api"
)

func newTestApp(t *testing.T, client *httpClient.ClientAPIMock) *App {
	t.Helper()
	db, err := badgerdb.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(
		articles.NewStore(client, cache.NewBounded(db, cache.DefaultLimit), logger),
		tags.NewStore(client, db, logger),
		tags.NewUserTags(db, logger),
		likes.NewStore(db, logger),
		profile.NewStore(db, logger),
		logger,
	)
}

func item(id, status string, tags ...string) *api.Item {
	return &api.Item{ID: id, Title: "Title " + id, Status: status, Tags: tags}
}

func TestPublishAndUnpublish_UpdateCounter(t *testing.T) {
	ctx := context.Background()
	client := &httpClient.ClientAPIMock{
		CreateDraftFunc: func(ctx context.Context, req api.DraftRequest) (*api.Item, error) {
			return item("d1", api.StatusDraft), nil
		},
		PublishDraftFunc: func(ctx context.Context, id string) (*api.Item, error) {
			return item(id, api.StatusPublished), nil
		},
		UnpublishPostFunc: func(ctx context.Context, id string) (*api.Item, error) {
			return item(id, api.StatusDraft), nil
		},
	}
	a := newTestApp(t, client)

	_, err := a.Articles.CreateDraft(ctx, models.DraftInput{Title: "t"})
	require.NoError(t, err)

	_, err = a.Publish(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 1, a.Profile.PublishedCount())

	_, err = a.Unpublish(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 0, a.Profile.PublishedCount())

	// повторное снятие не уводит счетчик в минус
	_, err = a.Unpublish(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 0, a.Profile.PublishedCount())
}

func TestPublish_FailureKeepsCounter(t *testing.T) {
	client := &httpClient.ClientAPIMock{
		PublishDraftFunc: func(ctx context.Context, id string) (*api.Item, error) {
			return nil, &httpClient.Error{Kind: httpClient.KindServerRejected, Status: 409}
		},
	}
	a := newTestApp(t, client)

	_, err := a.Publish(context.Background(), "d1")

	require.ErrorIs(t, err, httpClient.ErrServerRejected)
	assert.Equal(t, 0, a.Profile.PublishedCount())
}

func TestCreateAndPublish_CountsOnce(t *testing.T) {
	client := &httpClient.ClientAPIMock{
		CreateDraftFunc: func(ctx context.Context, req api.DraftRequest) (*api.Item, error) {
			return item("n1", api.StatusDraft), nil
		},
		PublishDraftFunc: func(ctx context.Context, id string) (*api.Item, error) {
			return item(id, api.StatusPublished), nil
		},
	}
	a := newTestApp(t, client)

	_, err := a.CreateAndPublish(context.Background(), models.DraftInput{Title: "x"})

	require.NoError(t, err)
	assert.Equal(t, 1, a.Profile.PublishedCount())
}

// TestFeed_Scenario каталог, переключение меток, обновление и проекция ленты
func TestFeed_Scenario(t *testing.T) {
	ctx := context.Background()
	client := &httpClient.ClientAPIMock{
		ListTagsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"AI", "Plants"}, nil
		},
		ListPostsFunc: func(ctx context.Context, q httpClient.PostQuery) (*api.ItemPage, error) {
			return &api.ItemPage{Items: []api.Item{
				*item("1", api.StatusPublished, "AI", "Bio"),
				*item("2", api.StatusPublished, "Plants"),
			}, Total: 2}, nil
		},
		ListDraftsFunc: func(ctx context.Context) (*api.ItemPage, error) {
			return &api.ItemPage{Items: []api.Item{}}, nil
		},
	}
	a := newTestApp(t, client)

	require.NoError(t, a.Tags.LoadCatalog(ctx))
	for _, label := range []string{"Plants", "AI", "Plants"} {
		_, err := a.Tags.Toggle(ctx, label)
		require.NoError(t, err)
	}
	require.NoError(t, a.Refresh(ctx, ""))

	calls := client.ListPostsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"AI"}, calls[0].Q.Tags)

	feed := a.Feed("", false)
	require.Len(t, feed, 1)
	assert.Equal(t, "1", feed[0].ID)

	// избранное: без лайков лента пуста
	assert.Empty(t, a.Feed("", true))

	_, err := a.Likes.Toggle(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, a.Feed("", true), 1)
	assert.Empty(t, a.Feed("ferns", true))
}

func TestRefresh_DraftsRefreshedWhenFeedFails(t *testing.T) {
	client := &httpClient.ClientAPIMock{
		ListPostsFunc: func(ctx context.Context, q httpClient.PostQuery) (*api.ItemPage, error) {
			return nil, &httpClient.Error{Kind: httpClient.KindServerRejected, Status: 503}
		},
		ListDraftsFunc: func(ctx context.Context) (*api.ItemPage, error) {
			return &api.ItemPage{Items: []api.Item{*item("d1", api.StatusDraft)}}, nil
		},
	}
	a := newTestApp(t, client)

	err := a.Refresh(context.Background(), "")

	require.ErrorIs(t, err, httpClient.ErrServerRejected)
	assert.Len(t, client.ListDraftsCalls(), 1)
	require.Len(t, a.Articles.Drafts(), 1)
	assert.Equal(t, "d1", a.Articles.Drafts()[0].ID)
}

func TestStart_LoadsCatalogAndArticles(t *testing.T) {
	client := &httpClient.ClientAPIMock{
		ListTagsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"AI"}, nil
		},
		ListPostsFunc: func(ctx context.Context, q httpClient.PostQuery) (*api.ItemPage, error) {
			return &api.ItemPage{Items: []api.Item{*item("p1", api.StatusPublished)}}, nil
		},
		ListDraftsFunc: func(ctx context.Context) (*api.ItemPage, error) {
			return &api.ItemPage{Items: []api.Item{*item("d1", api.StatusDraft)}}, nil
		},
	}
	a := newTestApp(t, client)

	select {
	case <-a.Start(context.Background()):
	case <-time.After(5 * time.Second):
		t.Fatal("start did not finish")
	}

	assert.Equal(t, []string{"AI"}, a.Tags.Catalog())
	assert.Len(t, a.Articles.Published(), 1)
	assert.Len(t, a.Articles.Drafts(), 1)
}

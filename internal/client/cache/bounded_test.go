package cache

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/articlekeeper/internal/client/storage"
	"github.com/iudanet/articlekeeper/internal/client/storage/boltdb"
	"github.com/iudanet/articlekeeper/internal/models"
)

func makeItems(n int) []models.ContentItem {
	items := make([]models.ContentItem, 0, n)
	for i := range n {
		items = append(items, models.ContentItem{ID: fmt.Sprintf("item-%02d", i), Title: fmt.Sprintf("Title %d", i)})
	}
	return items
}

func newBoltCache(t *testing.T, limit int) *Bounded {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewBounded(store, limit)
}

// TestBounded_KeepsFirstK проверяет, что после сохранения N > K элементов читаются ровно первые K
func TestBounded_KeepsFirstK(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			ctx := context.Background()
			c := newBoltCache(t, DefaultLimit)
			items := makeItems(n)

			require.NoError(t, c.Save(ctx, storage.KeyCachedPosts, items))

			loaded, err := c.Load(ctx, storage.KeyCachedPosts)
			require.NoError(t, err)

			want := min(n, DefaultLimit)
			require.Len(t, loaded, want)
			for i := range want {
				assert.Equal(t, items[i].ID, loaded[i].ID)
			}
		})
	}
}

func TestBounded_StampsCaptureTime(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock := &storage.ItemCacheMock{
		SaveItemsFunc: func(ctx context.Context, key string, items []models.CachedItem) error {
			return nil
		},
	}
	c := NewBounded(mock, 2)
	c.now = func() time.Time { return fixed }

	require.NoError(t, c.Save(ctx, storage.KeyCachedDrafts, makeItems(3)))

	calls := mock.SaveItemsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, storage.KeyCachedDrafts, calls[0].Key)
	require.Len(t, calls[0].Items, 2)
	for _, e := range calls[0].Items {
		assert.Equal(t, fixed, e.CapturedAt)
	}
}

func TestBounded_LoadTruncatesOversizedRecord(t *testing.T) {
	ctx := context.Background()
	wide := newBoltCache(t, 20)
	require.NoError(t, wide.Save(ctx, storage.KeyCachedPosts, makeItems(15)))

	narrow := NewBounded(wide.items, 5)
	loaded, err := narrow.Load(ctx, storage.KeyCachedPosts)

	require.NoError(t, err)
	assert.Len(t, loaded, 5)
	assert.Equal(t, "item-00", loaded[0].ID)
}

func TestBounded_PropagatesErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	mock := &storage.ItemCacheMock{
		SaveItemsFunc: func(ctx context.Context, key string, items []models.CachedItem) error {
			return boom
		},
		LoadItemsFunc: func(ctx context.Context, key string) ([]models.CachedItem, error) {
			return nil, boom
		},
	}
	c := NewBounded(mock, 0)

	assert.Equal(t, DefaultLimit, c.Limit())
	assert.ErrorIs(t, c.Save(ctx, storage.KeyCachedPosts, makeItems(1)), boom)
	_, err := c.Load(ctx, storage.KeyCachedPosts)
	assert.ErrorIs(t, err, boom)
}

func TestBounded_SaveCopiesItems(t *testing.T) {
	ctx := context.Background()
	var stored []models.CachedItem
	mock := &storage.ItemCacheMock{
		SaveItemsFunc: func(ctx context.Context, key string, items []models.CachedItem) error {
			stored = items
			return nil
		},
	}
	c := NewBounded(mock, 3)
	items := []models.ContentItem{{ID: "a", Tags: []string{"AI"}}}

	require.NoError(t, c.Save(ctx, storage.KeyCachedPosts, items))
	items[0].Tags[0] = "changed"

	assert.Equal(t, "AI", stored[0].Item.Tags[0])
}

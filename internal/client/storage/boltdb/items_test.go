package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/articlekeeper/internal/client/storage"
	"github.com/iudanet/articlekeeper/internal/models"
)

func TestSaveAndLoadItems(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Изначально ключ пуст
	items, err := store.LoadItems(ctx, storage.KeyCachedPosts)
	require.NoError(t, err)
	assert.Empty(t, items)

	captured := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	saved := []models.CachedItem{
		{CapturedAt: captured, Item: models.ContentItem{ID: "2", Title: "Second", State: models.StatePublished, Tags: []string{"AI"}}},
		{CapturedAt: captured, Item: models.ContentItem{ID: "1", Title: "First", State: models.StatePublished}},
	}
	require.NoError(t, store.SaveItems(ctx, storage.KeyCachedPosts, saved))

	loaded, err := store.LoadItems(ctx, storage.KeyCachedPosts)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "2", loaded[0].Item.ID)
	assert.Equal(t, "1", loaded[1].Item.ID)
	assert.True(t, captured.Equal(loaded[0].CapturedAt))
	assert.Equal(t, []string{"AI"}, loaded[0].Item.Tags)

	// Другие ключи не затронуты
	drafts, err := store.LoadItems(ctx, storage.KeyCachedDrafts)
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestSaveItems_ReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	first := []models.CachedItem{{Item: models.ContentItem{ID: "a"}}, {Item: models.ContentItem{ID: "b"}}}
	require.NoError(t, store.SaveItems(ctx, storage.KeyCachedDrafts, first))

	second := []models.CachedItem{{Item: models.ContentItem{ID: "c"}}}
	require.NoError(t, store.SaveItems(ctx, storage.KeyCachedDrafts, second))

	loaded, err := store.LoadItems(ctx, storage.KeyCachedDrafts)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "c", loaded[0].Item.ID)
}

func TestSaveItems_Empty(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveItems(ctx, storage.KeyCachedPosts, []models.CachedItem{{Item: models.ContentItem{ID: "a"}}}))
	require.NoError(t, store.SaveItems(ctx, storage.KeyCachedPosts, nil))

	loaded, err := store.LoadItems(ctx, storage.KeyCachedPosts)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestItems_EmptyKey(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	assert.ErrorIs(t, store.SaveItems(ctx, "", nil), storage.ErrEmptyKey)
	_, err := store.LoadItems(ctx, "")
	assert.ErrorIs(t, err, storage.ErrEmptyKey)
}

func TestLoadItems_CorruptedValue(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Пишем мусор напрямую в bucket
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketItems).Put([]byte(storage.KeyCachedPosts), []byte("not json"))
	})
	require.NoError(t, err)

	_, err = store.LoadItems(ctx, storage.KeyCachedPosts)
	assert.Error(t, err)
}

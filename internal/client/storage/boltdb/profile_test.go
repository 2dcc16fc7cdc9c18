package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/articlekeeper/internal/models"
)

func TestSaveAndLoadProfile(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Изначально профиль пуст
	profile, err := store.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Profile{}, profile)

	require.NoError(t, store.SaveProfile(ctx, models.Profile{Name: "Ann", PublishedCount: 3}))

	profile, err = store.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ann", profile.Name)
	assert.Equal(t, 3, profile.PublishedCount)
}

func TestSaveProfile_NegativeCountClamped(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveProfile(ctx, models.Profile{PublishedCount: -4}))

	profile, err := store.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, profile.PublishedCount)
}

func TestLoadProfile_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Удаляем bucket profile напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketProfile)
	})
	require.NoError(t, err)

	_, err = store.LoadProfile(ctx)
	assert.Error(t, err)
}

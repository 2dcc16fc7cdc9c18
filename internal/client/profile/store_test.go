package profile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/articlekeeper/internal/client/storage"
	"github.com/iudanet/articlekeeper/internal/client/storage/boltdb"
	"github.com/iudanet/articlekeeper/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProfile_Counter(t *testing.T) {
	ctx := context.Background()
	db, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "profile.db"))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	s := NewStore(db, testLogger())
	require.NoError(t, s.Load(ctx))

	require.NoError(t, s.SetName(ctx, "  Ann "))
	require.NoError(t, s.Increment(ctx))
	require.NoError(t, s.Increment(ctx))
	require.NoError(t, s.Decrement(ctx))

	assert.Equal(t, "Ann", s.Name())
	assert.Equal(t, 1, s.PublishedCount())

	restored := NewStore(db, testLogger())
	require.NoError(t, restored.Load(ctx))
	assert.Equal(t, models.Profile{Name: "Ann", PublishedCount: 1}, restored.Profile())
}

// TestDecrement_ClampedAtZero проверяет нижнюю границу счетчика
func TestDecrement_ClampedAtZero(t *testing.T) {
	ctx := context.Background()
	var saved []models.Profile
	ps := &storage.ProfileStorageMock{
		SaveProfileFunc: func(ctx context.Context, p models.Profile) error {
			saved = append(saved, p)
			return nil
		},
	}
	s := NewStore(ps, testLogger())

	require.NoError(t, s.Decrement(ctx))
	require.NoError(t, s.Decrement(ctx))

	assert.Equal(t, 0, s.PublishedCount())
	require.Len(t, saved, 2)
	for _, p := range saved {
		assert.Equal(t, 0, p.PublishedCount)
	}
}

func TestUpdate_SaveFailureKeepsState(t *testing.T) {
	ps := &storage.ProfileStorageMock{
		SaveProfileFunc: func(ctx context.Context, p models.Profile) error {
			return errors.New("disk full")
		},
	}
	s := NewStore(ps, testLogger())

	require.Error(t, s.Increment(context.Background()))
	assert.Equal(t, 0, s.PublishedCount())
}

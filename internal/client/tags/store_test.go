package tags

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/articlekeeper/internal/client/api"
	"github.com/iudanet/articlekeeper/internal/client/storage"
	"github.com/iudanet/articlekeeper/internal/client/storage/boltdb"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBolt(t *testing.T) *boltdb.Storage {
	t.Helper()
	s, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "tags.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func catalogClient(tags []string, err error) *httpClient.ClientAPIMock {
	return &httpClient.ClientAPIMock{
		ListTagsFunc: func(ctx context.Context) ([]string, error) {
			return tags, err
		},
	}
}

func TestLoadCatalog(t *testing.T) {
	s := NewStore(catalogClient([]string{"AI", "Plants"}, nil), newBolt(t), testLogger())

	require.NoError(t, s.LoadCatalog(context.Background()))

	assert.Equal(t, []string{"AI", "Plants"}, s.Catalog())
}

// TestLoadCatalog_FailureClears проверяет явную очистку каталога при ошибке
func TestLoadCatalog_FailureClears(t *testing.T) {
	ctx := context.Background()
	client := catalogClient([]string{"AI"}, nil)
	s := NewStore(client, newBolt(t), testLogger())
	require.NoError(t, s.LoadCatalog(ctx))

	client.ListTagsFunc = func(ctx context.Context) ([]string, error) {
		return nil, &httpClient.Error{Kind: httpClient.KindTransportFailure}
	}
	err := s.LoadCatalog(ctx)

	require.ErrorIs(t, err, httpClient.ErrTransportFailure)
	assert.Empty(t, s.Catalog())
}

// TestToggle_RoundTrip проверяет, что двойное переключение возвращает исходный выбор
func TestToggle_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore(catalogClient(nil, nil), newBolt(t), testLogger())

	selected, err := s.Toggle(ctx, "AI")
	require.NoError(t, err)
	assert.True(t, selected)

	selected, err = s.Toggle(ctx, "AI")
	require.NoError(t, err)
	assert.False(t, selected)

	assert.Empty(t, s.Selected())
}

// TestToggle_Scenario каталог AI, Plants; Plants, AI, Plants дает {AI}
func TestToggle_Scenario(t *testing.T) {
	ctx := context.Background()
	bolt := newBolt(t)
	s := NewStore(catalogClient([]string{"AI", "Plants"}, nil), bolt, testLogger())
	require.NoError(t, s.LoadCatalog(ctx))

	for _, label := range []string{"Plants", "AI", "Plants"} {
		_, err := s.Toggle(ctx, label)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"AI"}, s.Selected())
	assert.True(t, s.IsSelected("AI"))
	assert.False(t, s.IsSelected("Plants"))

	// выбор сохранен и восстанавливается новым экземпляром
	restored := NewStore(catalogClient(nil, nil), bolt, testLogger())
	require.NoError(t, restored.Load(ctx))
	assert.Equal(t, []string{"AI"}, restored.Selected())
}

func TestToggle_NotValidatedAgainstCatalog(t *testing.T) {
	s := NewStore(catalogClient([]string{"AI"}, nil), newBolt(t), testLogger())

	selected, err := s.Toggle(context.Background(), "Unknown")

	require.NoError(t, err)
	assert.True(t, selected)
}

func TestToggle_EmptyLabel(t *testing.T) {
	s := NewStore(catalogClient(nil, nil), newBolt(t), testLogger())

	_, err := s.Toggle(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyLabel)
}

func TestToggle_SaveFailureReverts(t *testing.T) {
	sets := &storage.SetStorageMock{
		SaveSetFunc: func(ctx context.Context, key string, values []string) error {
			return errors.New("disk full")
		},
	}
	s := NewStore(catalogClient(nil, nil), sets, testLogger())

	_, err := s.Toggle(context.Background(), "AI")

	require.Error(t, err)
	assert.False(t, s.IsSelected("AI"))
	calls := sets.SaveSetCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, storage.KeySelectedTags, calls[0].Key)
	assert.Equal(t, []string{"AI"}, calls[0].Values)
}

func TestSelectedSet_IsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewStore(catalogClient(nil, nil), newBolt(t), testLogger())
	_, err := s.Toggle(ctx, "AI")
	require.NoError(t, err)

	set := s.SelectedSet()
	delete(set, "AI")

	assert.True(t, s.IsSelected("AI"))
}

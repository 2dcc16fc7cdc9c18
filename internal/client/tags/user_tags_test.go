package tags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTags_AddRemove(t *testing.T) {
	ctx := context.Background()
	bolt := newBolt(t)
	u := NewUserTags(bolt, testLogger())
	require.NoError(t, u.Load(ctx))

	require.NoError(t, u.Add(ctx, "Go"))
	require.NoError(t, u.Add(ctx, " Rust "))
	require.NoError(t, u.Add(ctx, "Go"))
	assert.Equal(t, []string{"Go", "Rust"}, u.List())

	require.NoError(t, u.Remove(ctx, "Go"))
	require.NoError(t, u.Remove(ctx, "Missing"))
	assert.Equal(t, []string{"Rust"}, u.List())

	restored := NewUserTags(bolt, testLogger())
	require.NoError(t, restored.Load(ctx))
	assert.Equal(t, []string{"Rust"}, restored.List())
}

func TestUserTags_EmptyLabel(t *testing.T) {
	u := NewUserTags(newBolt(t), testLogger())

	assert.ErrorIs(t, u.Add(context.Background(), ""), ErrEmptyLabel)
	assert.Empty(t, u.List())
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/abhishek622/streetsmart/favorite/internal/repository"
	"github.com/abhishek622/streetsmart/favorite/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	r := New()
	now := time.Now()
	require.NoError(t, r.Put(ctx, &model.Favorite{ID: "f2", UserID: "u1", ShopID: "s2", CreatedAt: now.Add(time.Second)}))
	require.NoError(t, r.Put(ctx, &model.Favorite{ID: "f1", UserID: "u1", ShopID: "s1", CreatedAt: now}))
	require.NoError(t, r.Put(ctx, &model.Favorite{ID: "f3", UserID: "u2", ShopID: "s1", CreatedAt: now}))
	assert.ErrorIs(t, r.Put(ctx, &model.Favorite{ID: "f4", UserID: "u1", ShopID: "s1"}), repository.ErrConflict)

	list, err := r.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, model.FavoriteID("f1"), list[0].ID)

	ok, err := r.Exists(ctx, "u2", "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, r.DeleteByPair(ctx, "u2", "s1"))
	assert.ErrorIs(t, r.DeleteByPair(ctx, "u2", "s1"), repository.ErrNotFound)
	ok, err = r.Exists(ctx, "u2", "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

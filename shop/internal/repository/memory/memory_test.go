package memory

import (
	"context"
	"testing"

	"github.com/abhishek622/streetsmart/shop/internal/repository"
	"github.com/abhishek622/streetsmart/shop/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	r := New()
	require.NoError(t, r.Put(ctx, &model.Shop{ID: "s2", Name: "Bakery", Status: model.StatusPending}))
	require.NoError(t, r.Put(ctx, &model.Shop{ID: "s1", Name: "Amber", Status: model.StatusPending}))

	shops, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, model.ShopID("s1"), shops[0].ID)

	v, err := r.ReplaceRatingIDs(ctx, "s1", []string{"r1"}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
	_, err = r.ReplaceRatingIDs(ctx, "s1", nil, 0)
	assert.ErrorIs(t, err, repository.ErrConflict)

	s, err := r.SetStatus(ctx, "s1", model.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, s.Status)
	assert.Equal(t, []string{"r1"}, s.RatingIDs)

	require.NoError(t, r.Delete(ctx, "s1"))
	_, err = r.Get(ctx, "s1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "s1"), repository.ErrNotFound)
	_, err = r.SetStatus(ctx, "s1", model.StatusActive)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

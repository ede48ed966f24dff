package memory

import (
	"context"
	"testing"

	"github.com/abhishek622/streetsmart/user/internal/repository"
	"github.com/abhishek622/streetsmart/user/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	r := New()

	_, err := r.Get(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, r.Put(ctx, &model.User{ID: "u1", Email: "a@b.c"}))
	assert.ErrorIs(t, r.Put(ctx, &model.User{ID: "u2", Email: "a@b.c"}), repository.ErrConflict)

	v, err := r.ReplaceProjection(ctx, "u1", model.Projection{RatingIDs: []string{"r1"}, Version: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = r.ReplaceProjection(ctx, "u1", model.Projection{Version: 0})
	assert.ErrorIs(t, err, repository.ErrConflict)
	_, err = r.ReplaceProjection(ctx, "missing", model.Projection{})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	u, err := r.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, u.RatingIDs)
	assert.Equal(t, int64(1), u.Version)

	u.RatingIDs[0] = "mutated"
	again, err := r.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, again.RatingIDs)
}

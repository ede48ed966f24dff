package shop

import (
	"context"
	"errors"
	"testing"

	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/shop/internal/repository/memory"
	"github.com/abhishek622/streetsmart/shop/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type approvalFunc func(ctx context.Context, shopID model.ShopID, cred auth.Credential) error

func (f approvalFunc) Create(ctx context.Context, shopID model.ShopID, cred auth.Credential) error {
	return f(ctx, shopID, cred)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	var (
		gotShop model.ShopID
		gotCred auth.Credential
	)
	c := New(memory.New(), approvalFunc(func(_ context.Context, id model.ShopID, cred auth.Credential) error {
		gotShop, gotCred = id, cred
		return nil
	}), zap.NewNop())

	s, err := c.Register(ctx, &model.Shop{Name: "Amber", OwnerID: "o1", Status: model.StatusActive}, "tok")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, s.Status)
	assert.Equal(t, s.ID, gotShop)
	assert.Equal(t, auth.Credential("tok"), gotCred)

	ok, err := c.Exists(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisterApprovalFailureRemovesShop(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	boom := errors.New("approval service down")
	c := New(repo, approvalFunc(func(context.Context, model.ShopID, auth.Credential) error { return boom }), zap.NewNop())

	_, err := c.Register(ctx, &model.Shop{Name: "Amber", OwnerID: "o1"}, "tok")
	assert.ErrorIs(t, err, boom)

	shops, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, shops)
}

func TestRegisterInvalid(t *testing.T) {
	c := New(memory.New(), approvalFunc(func(context.Context, model.ShopID, auth.Credential) error {
		t.Fatal("approval must not be created")
		return nil
	}), zap.NewNop())
	_, err := c.Register(context.Background(), &model.Shop{Name: " ", OwnerID: "o1"}, "tok")
	assert.ErrorIs(t, err, consistency.ErrInvalidArgument)
}

func TestReplaceRatingIDsAndStatus(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	require.NoError(t, repo.Put(ctx, &model.Shop{ID: "s1", Name: "Amber", Status: model.StatusPending}))
	c := New(repo, nil, zap.NewNop())

	v, err := c.ReplaceRatingIDs(ctx, "s1", []string{"r1", "r1"}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
	_, err = c.ReplaceRatingIDs(ctx, "s1", []string{"r2"}, 0)
	assert.ErrorIs(t, err, consistency.ErrConflict)
	_, err = c.ReplaceRatingIDs(ctx, "missing", nil, 0)
	assert.True(t, consistency.IsNotFound(err, consistency.KindShop))

	s, err := c.SetStatus(ctx, "s1", model.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, s.Status)
	assert.Equal(t, []string{"r1"}, s.RatingIDs)

	_, err = c.SetStatus(ctx, "s1", "CLOSED")
	assert.ErrorIs(t, err, consistency.ErrInvalidArgument)
	_, err = c.SetStatus(ctx, "missing", model.StatusActive)
	assert.True(t, consistency.IsNotFound(err, consistency.KindShop))

	ok, err := c.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/pkg/idset"
	"github.com/abhishek622/streetsmart/user/internal/repository"
	"github.com/abhishek622/streetsmart/user/pkg/model"
	"github.com/google/uuid"
)

type userRepository interface {
	Get(ctx context.Context, id model.UserID) (*model.User, error)
	Put(ctx context.Context, u *model.User) error
	ReplaceProjection(ctx context.Context, id model.UserID, p model.Projection) (int64, error)
}

// Controller defines a user service controller.
type Controller struct {
	repo userRepository
}

// New creates a user service controller.
func New(repo userRepository) *Controller {
	return &Controller{repo}
}

// Create registers a new user with empty relationship lists.
func (c *Controller) Create(ctx context.Context, email, fullName string, role model.Role) (*model.User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email %q", consistency.ErrInvalidArgument, email)
	}
	if role == "" {
		role = model.RoleCustomer
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role %q", consistency.ErrInvalidArgument, role)
	}
	u := &model.User{
		ID:              model.UserID(uuid.NewString()),
		Email:           email,
		FullName:        fullName,
		Role:            role,
		RatingIDs:       []string{},
		FavoriteShopIDs: []string{},
	}
	if err := c.repo.Put(ctx, u); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: email %s already registered", consistency.ErrConflict, email)
		}
		return nil, err
	}
	return u, nil
}

// Get returns the user with the given id.
func (c *Controller) Get(ctx context.Context, id model.UserID) (*model.User, error) {
	u, err := c.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, consistency.NotFound(consistency.KindUser, string(id))
	}
	return u, err
}

// ReplaceProjection overwrites the relationship lists of a user. A stale
// version fails with consistency.ErrConflict.
func (c *Controller) ReplaceProjection(ctx context.Context, id model.UserID, p model.Projection) (int64, error) {
	p.RatingIDs = idset.Normalize(p.RatingIDs)
	p.FavoriteShopIDs = idset.Normalize(p.FavoriteShopIDs)
	v, err := c.repo.ReplaceProjection(ctx, id, p)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return 0, consistency.NotFound(consistency.KindUser, string(id))
	case errors.Is(err, repository.ErrConflict):
		return 0, fmt.Errorf("%w: user %s projection version %d is stale", consistency.ErrConflict, id, p.Version)
	}
	return v, err
}

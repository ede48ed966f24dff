package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/pkg/idset"
	"github.com/abhishek622/streetsmart/shop/internal/repository"
	"github.com/abhishek622/streetsmart/shop/pkg/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type shopRepository interface {
	Get(ctx context.Context, id model.ShopID) (*model.Shop, error)
	List(ctx context.Context) ([]*model.Shop, error)
	Put(ctx context.Context, s *model.Shop) error
	Delete(ctx context.Context, id model.ShopID) error
	ReplaceRatingIDs(ctx context.Context, id model.ShopID, ratingIDs []string, version int64) (int64, error)
	SetStatus(ctx context.Context, id model.ShopID, status model.Status) (*model.Shop, error)
}

type approvalGateway interface {
	Create(ctx context.Context, shopID model.ShopID, cred auth.Credential) error
}

// Controller defines a shop service controller.
type Controller struct {
	repo      shopRepository
	approvals approvalGateway
	logger    *zap.Logger
}

// New creates a shop service controller.
func New(repo shopRepository, approvals approvalGateway, logger *zap.Logger) *Controller {
	return &Controller{repo, approvals, logger}
}

// Register stores a new shop in PENDING status and opens its approval.
// If the approval cannot be created the shop is removed again, so a shop
// never exists without a pending approval.
func (c *Controller) Register(ctx context.Context, s *model.Shop, cred auth.Credential) (*model.Shop, error) {
	if strings.TrimSpace(s.Name) == "" || s.OwnerID == "" {
		return nil, fmt.Errorf("%w: shop name and owner are required", consistency.ErrInvalidArgument)
	}
	s.ID = model.ShopID(uuid.NewString())
	s.Status = model.StatusPending
	s.RatingIDs = []string{}
	s.Version = 0
	if err := c.repo.Put(ctx, s); err != nil {
		return nil, err
	}
	if err := c.approvals.Create(ctx, s.ID, cred); err != nil {
		if derr := c.repo.Delete(context.WithoutCancel(ctx), s.ID); derr != nil {
			c.logger.Error("Failed to remove shop without approval", zap.String("shopId", string(s.ID)), zap.Error(derr))
		}
		return nil, fmt.Errorf("create approval for shop %s: %w", s.ID, err)
	}
	return s, nil
}

// Get returns the shop with the given id.
func (c *Controller) Get(ctx context.Context, id model.ShopID) (*model.Shop, error) {
	s, err := c.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, consistency.NotFound(consistency.KindShop, string(id))
	}
	return s, err
}

// List returns all shops.
func (c *Controller) List(ctx context.Context) ([]*model.Shop, error) {
	return c.repo.List(ctx)
}

// Exists reports whether a shop with the given id is stored.
func (c *Controller) Exists(ctx context.Context, id model.ShopID) (bool, error) {
	_, err := c.repo.Get(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

// ReplaceRatingIDs overwrites the rating list of a shop. A stale version
// fails with consistency.ErrConflict.
func (c *Controller) ReplaceRatingIDs(ctx context.Context, id model.ShopID, ratingIDs []string, version int64) (int64, error) {
	v, err := c.repo.ReplaceRatingIDs(ctx, id, idset.Normalize(ratingIDs), version)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return 0, consistency.NotFound(consistency.KindShop, string(id))
	case errors.Is(err, repository.ErrConflict):
		return 0, fmt.Errorf("%w: shop %s rating list version %d is stale", consistency.ErrConflict, id, version)
	}
	return v, err
}

// SetStatus changes the lifecycle status of a shop.
func (c *Controller) SetStatus(ctx context.Context, id model.ShopID, status model.Status) (*model.Shop, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %q", consistency.ErrInvalidArgument, status)
	}
	s, err := c.repo.SetStatus(ctx, id, status)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, consistency.NotFound(consistency.KindShop, string(id))
	}
	return s, err
}

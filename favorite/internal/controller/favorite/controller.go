package favorite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhishek622/streetsmart/favorite/internal/repository"
	"github.com/abhishek622/streetsmart/favorite/pkg/model"
	"github.com/abhishek622/streetsmart/internal/gateway"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/pkg/idset"
	shopmodel "github.com/abhishek622/streetsmart/shop/pkg/model"
	usermodel "github.com/abhishek622/streetsmart/user/pkg/model"
	"github.com/google/uuid"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// Steps of the favorite operations, as reported in partial successes.
const (
	StepCreateFavorite      = "favorite-store.create"
	StepDeleteFavorite      = "favorite-store.delete"
	StepUserProjection      = "user-store.replace-projection"
	OperationAddFavorite    = "add-favorite"
	OperationRemoveFavorite = "remove-favorite"
)

type favoriteRepository interface {
	Put(ctx context.Context, f *model.Favorite) error
	DeleteByPair(ctx context.Context, userID, shopID string) error
	Exists(ctx context.Context, userID, shopID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Favorite, error)
}

// Controller coordinates the favorite store with the favorite projection of
// the user store.
type Controller struct {
	repo       favoriteRepository
	users      gateway.UserStore
	shops      gateway.ShopStore
	propagator *consistency.Propagator
	policy     model.DuplicatePolicy
	scope      tally.Scope
	logger     *zap.Logger
	now        func() time.Time
}

// New creates a favorite service controller.
func New(repo favoriteRepository, users gateway.UserStore, shops gateway.ShopStore, propagator *consistency.Propagator, policy model.DuplicatePolicy, scope tally.Scope, logger *zap.Logger) *Controller {
	return &Controller{
		repo:       repo,
		users:      users,
		shops:      shops,
		propagator: propagator,
		policy:     policy,
		scope:      scope,
		logger:     logger,
		now:        time.Now,
	}
}

// Add marks shopID as favorite of userID. When the shop already is a favorite
// the duplicate policy applies: DuplicateToggle removes it and returns a nil
// entry, DuplicateReject fails with consistency.ErrConflict.
func (c *Controller) Add(ctx context.Context, cred auth.Credential, userID usermodel.UserID, shopID shopmodel.ShopID) (entry *model.Entry, err error) {
	defer func() { consistency.Observe(c.scope, OperationAddFavorite, err) }()

	if cred.Empty() {
		return nil, consistency.ErrUnauthenticated
	}
	u, err := c.users.Get(ctx, userID, cred)
	if err != nil {
		return nil, err
	}
	ok, err := c.shops.Exists(ctx, shopID, cred)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, consistency.NotFound(consistency.KindShop, string(shopID))
	}
	if idset.Contains(u.FavoriteShopIDs, string(shopID)) {
		if c.policy == model.DuplicateReject {
			return nil, fmt.Errorf("%w: shop %s already is a favorite of user %s", consistency.ErrConflict, shopID, userID)
		}
		return nil, c.remove(ctx, cred, userID, shopID)
	}

	f := &model.Favorite{
		ID:        model.FavoriteID(uuid.NewString()),
		UserID:    string(userID),
		ShopID:    string(shopID),
		CreatedAt: c.now(),
	}
	if err := c.repo.Put(ctx, f); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: shop %s already is a favorite of user %s", consistency.ErrConflict, shopID, userID)
		}
		return nil, err
	}

	entry = &model.Entry{Favorite: *f}
	err = c.propagator.Run(ctx, OperationAddFavorite, string(f.ID), StepCreateFavorite,
		consistency.Step{
			Name: StepUserProjection,
			Run: func(ctx context.Context) error {
				u, err := c.users.Get(ctx, userID, cred)
				if err != nil {
					return err
				}
				p := u.Projection()
				p.FavoriteShopIDs = idset.Add(p.FavoriteShopIDs, string(shopID))
				_, err = c.users.ReplaceProjection(ctx, userID, p, cred)
				return err
			},
		},
	)
	if err != nil {
		return nil, err
	}

	// The name is display data only; both stores already agree.
	name, nerr := c.shops.GetBasicInfo(ctx, shopID, cred)
	if nerr != nil {
		c.logger.Warn("Failed to get shop name", zap.String("shopId", string(shopID)), zap.Error(nerr))
	}
	entry.ShopName = name
	return entry, nil
}

// Remove drops shopID from the favorites of userID. The projection is
// updated first; a failure there leaves everything untouched. A failure to
// delete the favorite row afterwards is a partial success.
func (c *Controller) Remove(ctx context.Context, cred auth.Credential, userID usermodel.UserID, shopID shopmodel.ShopID) (err error) {
	defer func() { consistency.Observe(c.scope, OperationRemoveFavorite, err) }()
	return c.remove(ctx, cred, userID, shopID)
}

// remove is Remove without the request metric, shared with the toggle path of
// Add.
func (c *Controller) remove(ctx context.Context, cred auth.Credential, userID usermodel.UserID, shopID shopmodel.ShopID) error {
	if cred.Empty() {
		return consistency.ErrUnauthenticated
	}
	u, err := c.users.Get(ctx, userID, cred)
	if err != nil {
		return err
	}
	if !idset.Contains(u.FavoriteShopIDs, string(shopID)) {
		return consistency.NotFound(consistency.KindFavorite, string(userID)+"/"+string(shopID))
	}
	p := u.Projection()
	p.FavoriteShopIDs = idset.Remove(p.FavoriteShopIDs, string(shopID))
	if _, err := c.users.ReplaceProjection(ctx, userID, p, cred); err != nil {
		return err
	}

	return c.propagator.Run(ctx, OperationRemoveFavorite, string(userID)+"/"+string(shopID), StepUserProjection,
		consistency.Step{
			Name: StepDeleteFavorite,
			Run: func(ctx context.Context) error {
				err := c.repo.DeleteByPair(ctx, string(userID), string(shopID))
				if errors.Is(err, repository.ErrNotFound) {
					c.logger.Info("Favorite row already absent",
						zap.String("userId", string(userID)), zap.String("shopId", string(shopID)))
					return nil
				}
				return err
			},
		},
	)
}

// List returns the favorites of a user with their shop names. Shops that no
// longer exist are listed without a name.
func (c *Controller) List(ctx context.Context, cred auth.Credential, userID usermodel.UserID) ([]*model.Entry, error) {
	favorites, err := c.repo.ListByUser(ctx, string(userID))
	if err != nil {
		return nil, err
	}
	res := make([]*model.Entry, 0, len(favorites))
	for _, f := range favorites {
		name, err := c.shops.GetBasicInfo(ctx, shopmodel.ShopID(f.ShopID), cred)
		if err != nil && !consistency.IsNotFound(err, consistency.KindShop) {
			return nil, err
		}
		res = append(res, &model.Entry{Favorite: *f, ShopName: name})
	}
	return res, nil
}

// IsFavorite reports whether the favorite store holds the pair.
func (c *Controller) IsFavorite(ctx context.Context, userID usermodel.UserID, shopID shopmodel.ShopID) (bool, error) {
	return c.repo.Exists(ctx, string(userID), string(shopID))
}

// Count returns the number of favorite shops in the user projection.
func (c *Controller) Count(ctx context.Context, cred auth.Credential, userID usermodel.UserID) (int64, error) {
	if cred.Empty() {
		return 0, consistency.ErrUnauthenticated
	}
	u, err := c.users.Get(ctx, userID, cred)
	if err != nil {
		return 0, err
	}
	return int64(len(u.FavoriteShopIDs)), nil
}

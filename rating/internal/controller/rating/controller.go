package rating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhishek622/streetsmart/internal/gateway"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/pkg/idset"
	"github.com/abhishek622/streetsmart/rating/internal/repository"
	"github.com/abhishek622/streetsmart/rating/pkg/model"
	shopmodel "github.com/abhishek622/streetsmart/shop/pkg/model"
	usermodel "github.com/abhishek622/streetsmart/user/pkg/model"
	"github.com/google/uuid"
	"github.com/uber-go/tally/v4"
)

// Steps of the rating operations, as reported in partial successes.
const (
	StepCreateRating      = "rating-store.create"
	StepDeleteRating      = "rating-store.delete"
	StepUserProjection    = "user-store.replace-projection"
	StepShopProjection    = "shop-store.replace-rating-ids"
	OperationAddRating    = "add-rating"
	OperationUpdateRating = "update-rating"
	OperationDeleteRating = "delete-rating"
)

type ratingRepository interface {
	Get(ctx context.Context, id model.RatingID) (*model.Rating, error)
	Put(ctx context.Context, rating *model.Rating) error
	Update(ctx context.Context, rating *model.Rating) error
	Delete(ctx context.Context, id model.RatingID) error
	ListByShop(ctx context.Context, shopID string) ([]*model.Rating, error)
	CountByShop(ctx context.Context, shopID string) (int64, error)
}

// Controller coordinates the rating store with the rating projections of the
// user and shop stores.
type Controller struct {
	repo       ratingRepository
	users      gateway.UserStore
	shops      gateway.ShopStore
	propagator *consistency.Propagator
	scope      tally.Scope
	now        func() time.Time
}

// New creates a rating service controller.
func New(repo ratingRepository, users gateway.UserStore, shops gateway.ShopStore, propagator *consistency.Propagator, scope tally.Scope) *Controller {
	return &Controller{repo: repo, users: users, shops: shops, propagator: propagator, scope: scope, now: time.Now}
}

// Add creates a rating of shopID by userID and records it in both projections.
func (c *Controller) Add(ctx context.Context, cred auth.Credential, userID usermodel.UserID, shopID shopmodel.ShopID, score model.Score, review string) (rating *model.Rating, err error) {
	defer func() { consistency.Observe(c.scope, OperationAddRating, err) }()

	if cred.Empty() {
		return nil, consistency.ErrUnauthenticated
	}
	if !score.Valid() {
		return nil, fmt.Errorf("%w: score %d outside [%d, %d]", consistency.ErrInvalidArgument, score, model.MinScore, model.MaxScore)
	}
	if _, err := c.users.Get(ctx, userID, cred); err != nil {
		return nil, err
	}
	if err := c.requireShop(ctx, shopID, cred); err != nil {
		return nil, err
	}

	now := c.now()
	rating = &model.Rating{
		ID:        model.RatingID(uuid.NewString()),
		AuthorID:  string(userID),
		ShopID:    string(shopID),
		Score:     score,
		Review:    review,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.repo.Put(ctx, rating); err != nil {
		return nil, storeError(err, rating.ID)
	}

	id := string(rating.ID)
	err = c.propagator.Run(ctx, OperationAddRating, id, StepCreateRating,
		c.userStep(userID, cred, func(ids []string) []string { return idset.Add(ids, id) }),
		c.shopStep(shopID, cred, func(ids []string) []string { return idset.Add(ids, id) }),
	)
	if err != nil {
		return nil, err
	}
	return rating, nil
}

// Update changes the score and review of a rating owned by userID. Only the
// rating row changes, and a rating deleted after the ownership check stays
// deleted.
func (c *Controller) Update(ctx context.Context, cred auth.Credential, userID usermodel.UserID, id model.RatingID, score model.Score, review string) (rating *model.Rating, err error) {
	defer func() { consistency.Observe(c.scope, OperationUpdateRating, err) }()

	if cred.Empty() {
		return nil, consistency.ErrUnauthenticated
	}
	if !score.Valid() {
		return nil, fmt.Errorf("%w: score %d outside [%d, %d]", consistency.ErrInvalidArgument, score, model.MinScore, model.MaxScore)
	}
	rating, err = c.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	rating.Score = score
	rating.Review = review
	rating.UpdatedAt = c.now()
	if err := c.repo.Update(ctx, rating); err != nil {
		return nil, storeError(err, id)
	}
	return rating, nil
}

// Delete removes a rating owned by userID and drops it from both projections.
// The shop projection is taken from the stored rating.
func (c *Controller) Delete(ctx context.Context, cred auth.Credential, userID usermodel.UserID, id model.RatingID) (err error) {
	defer func() { consistency.Observe(c.scope, OperationDeleteRating, err) }()

	if cred.Empty() {
		return consistency.ErrUnauthenticated
	}
	rating, err := c.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := c.repo.Delete(ctx, id); err != nil {
		return storeError(err, id)
	}

	remove := func(ids []string) []string { return idset.Remove(ids, string(id)) }
	return c.propagator.Run(ctx, OperationDeleteRating, string(id), StepDeleteRating,
		c.userStep(usermodel.UserID(rating.AuthorID), cred, remove),
		c.shopStep(shopmodel.ShopID(rating.ShopID), cred, remove),
	)
}

// Get returns a rating by id.
func (c *Controller) Get(ctx context.Context, id model.RatingID) (*model.Rating, error) {
	rating, err := c.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, consistency.NotFound(consistency.KindRating, string(id))
	}
	return rating, err
}

// ListByShop returns the ratings of a shop.
func (c *Controller) ListByShop(ctx context.Context, shopID shopmodel.ShopID) ([]*model.Rating, error) {
	return c.repo.ListByShop(ctx, string(shopID))
}

// CountByShop returns the number of ratings of a shop.
func (c *Controller) CountByShop(ctx context.Context, shopID shopmodel.ShopID) (int64, error) {
	return c.repo.CountByShop(ctx, string(shopID))
}

// storeError maps rating store sentinels onto consistency errors.
func storeError(err error, id model.RatingID) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return consistency.NotFound(consistency.KindRating, string(id))
	case errors.Is(err, repository.ErrInvalidScore):
		return fmt.Errorf("%w: %v", consistency.ErrInvalidArgument, err)
	default:
		return err
	}
}

func (c *Controller) requireShop(ctx context.Context, shopID shopmodel.ShopID, cred auth.Credential) error {
	ok, err := c.shops.Exists(ctx, shopID, cred)
	if err != nil {
		return err
	}
	if !ok {
		return consistency.NotFound(consistency.KindShop, string(shopID))
	}
	return nil
}

func (c *Controller) owned(ctx context.Context, userID usermodel.UserID, id model.RatingID) (*model.Rating, error) {
	rating, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating.AuthorID != string(userID) {
		return nil, fmt.Errorf("%w: rating %s is not owned by user %s", consistency.ErrUnauthorized, id, userID)
	}
	return rating, nil
}

// userStep rewrites the rating list of the user projection at the version it
// reads.
func (c *Controller) userStep(userID usermodel.UserID, cred auth.Credential, edit func([]string) []string) consistency.Step {
	return consistency.Step{
		Name: StepUserProjection,
		Run: func(ctx context.Context) error {
			u, err := c.users.Get(ctx, userID, cred)
			if err != nil {
				return err
			}
			p := u.Projection()
			p.RatingIDs = edit(p.RatingIDs)
			_, err = c.users.ReplaceProjection(ctx, userID, p, cred)
			return err
		},
	}
}

func (c *Controller) shopStep(shopID shopmodel.ShopID, cred auth.Credential, edit func([]string) []string) consistency.Step {
	return consistency.Step{
		Name: StepShopProjection,
		Run: func(ctx context.Context) error {
			s, err := c.shops.Get(ctx, shopID, cred)
			if err != nil {
				return err
			}
			_, err = c.shops.ReplaceRatingIDs(ctx, shopID, edit(s.RatingIDs), s.Version, cred)
			return err
		},
	}
}

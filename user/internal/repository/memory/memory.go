package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/abhishek622/streetsmart/user/internal/repository"
	"github.com/abhishek622/streetsmart/user/pkg/model"
	"go.opentelemetry.io/otel"
)

const tracerID = "user-repository-memory"

// Repository defines a memory user repository.
type Repository struct {
	sync.RWMutex
	data map[model.UserID]*model.User
}

// New creates a new memory repository.
func New() *Repository {
	return &Repository{data: map[model.UserID]*model.User{}}
}

// Get retrieves a user by id.
func (r *Repository) Get(ctx context.Context, id model.UserID) (*model.User, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()

	u, ok := r.data[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clone(u), nil
}

// Put stores a new user.
func (r *Repository) Put(ctx context.Context, u *model.User) error {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Put")
	defer span.End()

	if _, ok := r.data[u.ID]; ok {
		return repository.ErrConflict
	}
	for _, existing := range r.data {
		if existing.Email == u.Email {
			return repository.ErrConflict
		}
	}
	r.data[u.ID] = clone(u)
	return nil
}

// ReplaceProjection overwrites the relationship lists of a user if version
// matches the stored one, and returns the new version.
func (r *Repository) ReplaceProjection(ctx context.Context, id model.UserID, p model.Projection) (int64, error) {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/ReplaceProjection")
	defer span.End()

	u, ok := r.data[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	if u.Version != p.Version {
		return 0, repository.ErrConflict
	}
	u.RatingIDs = slices.Clone(p.RatingIDs)
	u.FavoriteShopIDs = slices.Clone(p.FavoriteShopIDs)
	u.Version++
	return u.Version, nil
}

func clone(u *model.User) *model.User {
	c := *u
	c.RatingIDs = slices.Clone(u.RatingIDs)
	c.FavoriteShopIDs = slices.Clone(u.FavoriteShopIDs)
	return &c
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/abhishek622/streetsmart/favorite/internal/repository"
	"github.com/abhishek622/streetsmart/favorite/pkg/model"
	"go.opentelemetry.io/otel"
)

const tracerID = "favorite-repository-memory"

type pair struct {
	userID string
	shopID string
}

// Repository defines a memory favorite repository keyed by (user, shop).
type Repository struct {
	sync.RWMutex
	data map[pair]model.Favorite
}

// New creates a new memory repository.
func New() *Repository {
	return &Repository{data: map[pair]model.Favorite{}}
}

// Put stores a favorite. A second favorite for the same pair fails with
// repository.ErrConflict.
func (r *Repository) Put(ctx context.Context, f *model.Favorite) error {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Put")
	defer span.End()

	k := pair{f.UserID, f.ShopID}
	if _, ok := r.data[k]; ok {
		return repository.ErrConflict
	}
	r.data[k] = *f
	return nil
}

// DeleteByPair removes the favorite of userID for shopID.
func (r *Repository) DeleteByPair(ctx context.Context, userID, shopID string) error {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/DeleteByPair")
	defer span.End()

	k := pair{userID, shopID}
	if _, ok := r.data[k]; !ok {
		return repository.ErrNotFound
	}
	delete(r.data, k)
	return nil
}

// Exists reports whether userID has shopID as favorite.
func (r *Repository) Exists(ctx context.Context, userID, shopID string) (bool, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Exists")
	defer span.End()

	_, ok := r.data[pair{userID, shopID}]
	return ok, nil
}

// ListByUser returns the favorites of a user, oldest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*model.Favorite, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/ListByUser")
	defer span.End()

	var res []*model.Favorite
	for k, f := range r.data {
		if k.userID == userID {
			f := f
			res = append(res, &f)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/abhishek622/streetsmart/shop/internal/repository"
	"github.com/abhishek622/streetsmart/shop/pkg/model"
	"go.opentelemetry.io/otel"
)

const tracerID = "shop-repository-memory"

// Repository defines a memory shop repository.
type Repository struct {
	sync.RWMutex
	data map[model.ShopID]*model.Shop
}

// New creates a new memory repository.
func New() *Repository {
	return &Repository{data: map[model.ShopID]*model.Shop{}}
}

// Get retrieves a shop by id.
func (r *Repository) Get(ctx context.Context, id model.ShopID) (*model.Shop, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()

	s, ok := r.data[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clone(s), nil
}

// List returns all shops ordered by name.
func (r *Repository) List(ctx context.Context) ([]*model.Shop, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/List")
	defer span.End()

	res := make([]*model.Shop, 0, len(r.data))
	for _, s := range r.data {
		res = append(res, clone(s))
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

// Put stores a shop.
func (r *Repository) Put(ctx context.Context, s *model.Shop) error {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Put")
	defer span.End()

	r.data[s.ID] = clone(s)
	return nil
}

// Delete removes a shop.
func (r *Repository) Delete(ctx context.Context, id model.ShopID) error {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Delete")
	defer span.End()

	if _, ok := r.data[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.data, id)
	return nil
}

// ReplaceRatingIDs overwrites the rating list of a shop if version matches
// the stored one, and returns the new version.
func (r *Repository) ReplaceRatingIDs(ctx context.Context, id model.ShopID, ratingIDs []string, version int64) (int64, error) {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/ReplaceRatingIDs")
	defer span.End()

	s, ok := r.data[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	if s.Version != version {
		return 0, repository.ErrConflict
	}
	s.RatingIDs = slices.Clone(ratingIDs)
	s.Version++
	return s.Version, nil
}

// SetStatus changes the lifecycle status of a shop.
func (r *Repository) SetStatus(ctx context.Context, id model.ShopID, status model.Status) (*model.Shop, error) {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/SetStatus")
	defer span.End()

	s, ok := r.data[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	s.Status = status
	return clone(s), nil
}

func clone(s *model.Shop) *model.Shop {
	c := *s
	c.RatingIDs = slices.Clone(s.RatingIDs)
	return &c
}

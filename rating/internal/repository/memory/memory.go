package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/abhishek622/streetsmart/rating/internal/repository"
	"github.com/abhishek622/streetsmart/rating/pkg/model"
	"go.opentelemetry.io/otel"
)

const tracerID = "rating-repository-memory"

// Repository defines a memory rating repository.
type Repository struct {
	sync.RWMutex
	data map[model.RatingID]model.Rating
}

// New creates a new memory repository.
func New() *Repository {
	return &Repository{data: map[model.RatingID]model.Rating{}}
}

// Get retrieves a rating by id.
func (r *Repository) Get(ctx context.Context, id model.RatingID) (*model.Rating, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()

	rating, ok := r.data[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rating, nil
}

// Put creates a rating.
func (r *Repository) Put(ctx context.Context, rating *model.Rating) error {
	if !rating.Score.Valid() {
		return repository.ErrInvalidScore
	}
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Put")
	defer span.End()

	r.data[rating.ID] = *rating
	return nil
}

// Update changes the score, review and update time of an existing rating.
func (r *Repository) Update(ctx context.Context, rating *model.Rating) error {
	if !rating.Score.Valid() {
		return repository.ErrInvalidScore
	}
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Update")
	defer span.End()

	cur, ok := r.data[rating.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cur.Score, cur.Review, cur.UpdatedAt = rating.Score, rating.Review, rating.UpdatedAt
	r.data[rating.ID] = cur
	return nil
}

// Delete removes a rating.
func (r *Repository) Delete(ctx context.Context, id model.RatingID) error {
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

// ListByShop returns the ratings of a shop, oldest first.
func (r *Repository) ListByShop(ctx context.Context, shopID string) ([]*model.Rating, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/ListByShop")
	defer span.End()

	var res []*model.Rating
	for _, rating := range r.data {
		if rating.ShopID == shopID {
			res = append(res, &rating)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

// CountByShop returns the number of ratings of a shop.
func (r *Repository) CountByShop(ctx context.Context, shopID string) (int64, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/CountByShop")
	defer span.End()

	var n int64
	for _, rating := range r.data {
		if rating.ShopID == shopID {
			n++
		}
	}
	return n, nil
}

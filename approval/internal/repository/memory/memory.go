package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/abhishek622/streetsmart/approval/internal/repository"
	"github.com/abhishek622/streetsmart/approval/pkg/model"
	"go.opentelemetry.io/otel"
)

const tracerID = "approval-repository-memory"

// Repository defines a memory approval repository keyed by shop id.
type Repository struct {
	sync.RWMutex
	data map[string]model.Approval
}

// New creates a new memory repository.
func New() *Repository {
	return &Repository{data: map[string]model.Approval{}}
}

// Get retrieves the approval of a shop.
func (r *Repository) Get(ctx context.Context, shopID string) (*model.Approval, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()

	a, ok := r.data[shopID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

// Put stores a new approval.
func (r *Repository) Put(ctx context.Context, a *model.Approval) error {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Put")
	defer span.End()

	if _, ok := r.data[a.ShopID]; ok {
		return repository.ErrConflict
	}
	r.data[a.ShopID] = *a
	return nil
}

// Decide stores the outcome of a pending approval.
func (r *Repository) Decide(ctx context.Context, a *model.Approval) error {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Decide")
	defer span.End()

	cur, ok := r.data[a.ShopID]
	if !ok {
		return repository.ErrNotFound
	}
	if cur.Terminal() {
		return repository.ErrNotPending
	}
	cur.Status, cur.Approved, cur.Reason, cur.UpdatedAt = a.Status, a.Approved, a.Reason, a.UpdatedAt
	r.data[a.ShopID] = cur
	return nil
}

// ListPending returns the pending approvals, oldest first.
func (r *Repository) ListPending(ctx context.Context) ([]*model.Approval, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/ListPending")
	defer span.End()

	var res []*model.Approval
	for _, a := range r.data {
		if a.Status == model.StatusPending {
			res = append(res, &a)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

// CountPending returns the number of pending approvals.
func (r *Repository) CountPending(ctx context.Context) (int64, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/CountPending")
	defer span.End()

	var n int64
	for _, a := range r.data {
		if a.Status == model.StatusPending {
			n++
		}
	}
	return n, nil
}

package approval

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhishek622/streetsmart/approval/internal/repository"
	"github.com/abhishek622/streetsmart/approval/pkg/model"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	shopmodel "github.com/abhishek622/streetsmart/shop/pkg/model"
	"github.com/google/uuid"
	"github.com/uber-go/tally/v4"
)

// Steps of the approval operations, as reported in partial successes.
const (
	StepApprove          = "approval-store.approve"
	StepReject           = "approval-store.reject"
	StepShopStatus       = "shop-store.set-status"
	OperationApproveShop = "approve-shop"
	OperationRejectShop  = "reject-shop"
)

type approvalRepository interface {
	Get(ctx context.Context, shopID string) (*model.Approval, error)
	Put(ctx context.Context, a *model.Approval) error
	Decide(ctx context.Context, a *model.Approval) error
	ListPending(ctx context.Context) ([]*model.Approval, error)
	CountPending(ctx context.Context) (int64, error)
}

type shopStatusSetter interface {
	SetStatus(ctx context.Context, id shopmodel.ShopID, status shopmodel.Status, cred auth.Credential) error
}

// Controller drives the approval of registered shops and the resulting shop
// status.
type Controller struct {
	repo       approvalRepository
	shops      shopStatusSetter
	propagator *consistency.Propagator
	scope      tally.Scope
	now        func() time.Time
}

// New creates an approval service controller.
func New(repo approvalRepository, shops shopStatusSetter, propagator *consistency.Propagator, scope tally.Scope) *Controller {
	return &Controller{repo: repo, shops: shops, propagator: propagator, scope: scope, now: time.Now}
}

// Create opens the pending approval of a shop.
func (c *Controller) Create(ctx context.Context, cred auth.Credential, shopID shopmodel.ShopID) (*model.Approval, error) {
	if cred.Empty() {
		return nil, consistency.ErrUnauthenticated
	}
	now := c.now()
	a := &model.Approval{
		ID:        model.ApprovalID(uuid.NewString()),
		ShopID:    string(shopID),
		Status:    model.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.repo.Put(ctx, a); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: shop %s already has an approval", consistency.ErrConflict, shopID)
		}
		return nil, err
	}
	return a, nil
}

// Approve moves the approval of a shop to APPROVED and activates the shop.
func (c *Controller) Approve(ctx context.Context, cred auth.Credential, shopID shopmodel.ShopID) (a *model.Approval, err error) {
	defer func() { consistency.Observe(c.scope, OperationApproveShop, err) }()
	return c.decide(ctx, cred, shopID, true, "")
}

// Reject moves the approval of a shop to REJECTED and marks the shop rejected.
func (c *Controller) Reject(ctx context.Context, cred auth.Credential, shopID shopmodel.ShopID, reason string) (a *model.Approval, err error) {
	defer func() { consistency.Observe(c.scope, OperationRejectShop, err) }()
	return c.decide(ctx, cred, shopID, false, reason)
}

func (c *Controller) decide(ctx context.Context, cred auth.Credential, shopID shopmodel.ShopID, approved bool, reason string) (*model.Approval, error) {
	if cred.Empty() {
		return nil, consistency.ErrUnauthenticated
	}
	a, err := c.repo.Get(ctx, string(shopID))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, consistency.NotFound(consistency.KindApproval, string(shopID))
	} else if err != nil {
		return nil, err
	}
	if a.Terminal() {
		return nil, fmt.Errorf("%w: approval of shop %s is %s", consistency.ErrInvalidState, shopID, a.Status)
	}

	op, committed, shopStatus := OperationRejectShop, StepReject, shopmodel.StatusRejected
	a.Status, a.Approved, a.Reason, a.UpdatedAt = model.StatusRejected, approved, reason, c.now()
	if approved {
		op, committed, shopStatus = OperationApproveShop, StepApprove, shopmodel.StatusActive
		a.Status = model.StatusApproved
	}
	if err := c.repo.Decide(ctx, a); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotPending):
			return nil, fmt.Errorf("%w: approval of shop %s was decided concurrently", consistency.ErrInvalidState, shopID)
		case errors.Is(err, repository.ErrNotFound):
			return nil, consistency.NotFound(consistency.KindApproval, string(shopID))
		}
		return nil, err
	}

	err = c.propagator.Run(ctx, op, string(shopID), committed, consistency.Step{
		Name: StepShopStatus,
		Run: func(ctx context.Context) error {
			return c.shops.SetStatus(ctx, shopID, shopStatus, cred)
		},
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListPending returns the approvals awaiting a decision, oldest first.
func (c *Controller) ListPending(ctx context.Context) ([]*model.Approval, error) {
	return c.repo.ListPending(ctx)
}

// CountPending returns the number of approvals awaiting a decision.
func (c *Controller) CountPending(ctx context.Context) (int64, error) {
	return c.repo.CountPending(ctx)
}

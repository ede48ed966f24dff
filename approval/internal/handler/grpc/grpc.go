package grpc

import (
	"context"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/approval/internal/controller/approval"
	"github.com/abhishek622/streetsmart/approval/pkg/model"
	"github.com/abhishek622/streetsmart/internal/grpcutil"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	shopmodel "github.com/abhishek622/streetsmart/shop/pkg/model"
)

// Handler defines a gRPC approval API handler.
type Handler struct {
	ctrl *approval.Controller
}

// New creates a new approval gRPC handler.
func New(ctrl *approval.Controller) *Handler {
	return &Handler{ctrl}
}

// CreateApproval opens the pending approval of a shop.
func (h *Handler) CreateApproval(ctx context.Context, req *api.CreateApprovalRequest) (*api.CreateApprovalResponse, error) {
	if req == nil || req.ShopID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	a, err := h.ctrl.Create(ctx, auth.FromIncomingContext(ctx), shopmodel.ShopID(req.ShopID))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.CreateApprovalResponse{Approval: model.ApprovalToAPI(a)}, nil
}

// Approve approves a pending shop and activates it.
func (h *Handler) Approve(ctx context.Context, req *api.ApproveRequest) (*api.ApproveResponse, error) {
	if req == nil || req.ShopID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	a, err := h.ctrl.Approve(ctx, auth.FromIncomingContext(ctx), shopmodel.ShopID(req.ShopID))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.ApproveResponse{Approval: model.ApprovalToAPI(a)}, nil
}

// Reject rejects a pending shop.
func (h *Handler) Reject(ctx context.Context, req *api.RejectRequest) (*api.RejectResponse, error) {
	if req == nil || req.ShopID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	a, err := h.ctrl.Reject(ctx, auth.FromIncomingContext(ctx), shopmodel.ShopID(req.ShopID), req.Reason)
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.RejectResponse{Approval: model.ApprovalToAPI(a)}, nil
}

func (h *Handler) ListPending(ctx context.Context, _ *api.ListPendingRequest) (*api.ListPendingResponse, error) {
	list, err := h.ctrl.ListPending(ctx)
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	res := &api.ListPendingResponse{Approvals: make([]*api.Approval, 0, len(list))}
	for _, a := range list {
		res.Approvals = append(res.Approvals, model.ApprovalToAPI(a))
	}
	return res, nil
}

func (h *Handler) CountPending(ctx context.Context, _ *api.CountPendingRequest) (*api.CountPendingResponse, error) {
	n, err := h.ctrl.CountPending(ctx)
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.CountPendingResponse{Count: n}, nil
}

package grpc

import (
	"context"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/internal/grpcutil"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/user/internal/controller/user"
	"github.com/abhishek622/streetsmart/user/pkg/model"
)

// Handler defines a user gRPC handler.
type Handler struct {
	ctrl *user.Controller
}

// New creates a new user gRPC handler.
func New(ctrl *user.Controller) *Handler {
	return &Handler{ctrl}
}

// CreateUser registers a user.
func (h *Handler) CreateUser(ctx context.Context, req *api.CreateUserRequest) (*api.CreateUserResponse, error) {
	if req == nil {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	u, err := h.ctrl.Create(ctx, req.Email, req.FullName, model.Role(req.Role))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.CreateUserResponse{User: model.UserToAPI(u)}, nil
}

// GetUser returns a user together with its projection.
func (h *Handler) GetUser(ctx context.Context, req *api.GetUserRequest) (*api.GetUserResponse, error) {
	if req == nil || req.UserID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	u, err := h.ctrl.Get(ctx, model.UserID(req.UserID))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.GetUserResponse{User: model.UserToAPI(u)}, nil
}

// ReplaceProjection overwrites the relationship lists of a user.
func (h *Handler) ReplaceProjection(ctx context.Context, req *api.ReplaceProjectionRequest) (*api.ReplaceProjectionResponse, error) {
	if req == nil || req.UserID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	v, err := h.ctrl.ReplaceProjection(ctx, model.UserID(req.UserID), model.Projection{
		RatingIDs:       req.RatingIDs,
		FavoriteShopIDs: req.FavoriteShopIDs,
		Version:         req.Version,
	})
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.ReplaceProjectionResponse{Version: v}, nil
}

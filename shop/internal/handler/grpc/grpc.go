package grpc

import (
	"context"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/internal/grpcutil"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/shop/internal/controller/shop"
	"github.com/abhishek622/streetsmart/shop/pkg/model"
)

// Handler defines a shop gRPC handler.
type Handler struct {
	ctrl *shop.Controller
}

// New creates a new shop gRPC handler.
func New(ctrl *shop.Controller) *Handler {
	return &Handler{ctrl}
}

// RegisterShop stores a new shop and opens its approval.
func (h *Handler) RegisterShop(ctx context.Context, req *api.RegisterShopRequest) (*api.RegisterShopResponse, error) {
	if req == nil {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	s, err := h.ctrl.Register(ctx, &model.Shop{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     req.OwnerID,
	}, auth.FromIncomingContext(ctx))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.RegisterShopResponse{Shop: model.ShopToAPI(s)}, nil
}

// GetShop returns a shop together with its projection.
func (h *Handler) GetShop(ctx context.Context, req *api.GetShopRequest) (*api.GetShopResponse, error) {
	if req == nil || req.ShopID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	s, err := h.ctrl.Get(ctx, model.ShopID(req.ShopID))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.GetShopResponse{Shop: model.ShopToAPI(s)}, nil
}

// ListShops returns all shops.
func (h *Handler) ListShops(ctx context.Context, _ *api.ListShopsRequest) (*api.ListShopsResponse, error) {
	shops, err := h.ctrl.List(ctx)
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	res := &api.ListShopsResponse{Shops: make([]*api.Shop, 0, len(shops))}
	for _, s := range shops {
		res.Shops = append(res.Shops, model.ShopToAPI(s))
	}
	return res, nil
}

// ShopExists reports whether a shop is stored.
func (h *Handler) ShopExists(ctx context.Context, req *api.ShopExistsRequest) (*api.ShopExistsResponse, error) {
	if req == nil || req.ShopID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	ok, err := h.ctrl.Exists(ctx, model.ShopID(req.ShopID))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.ShopExistsResponse{Exists: ok}, nil
}

// GetBasicInfo returns the id and name of a shop.
func (h *Handler) GetBasicInfo(ctx context.Context, req *api.GetBasicInfoRequest) (*api.GetBasicInfoResponse, error) {
	if req == nil || req.ShopID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	s, err := h.ctrl.Get(ctx, model.ShopID(req.ShopID))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.GetBasicInfoResponse{ID: string(s.ID), Name: s.Name}, nil
}

// ReplaceRatingIDs overwrites the rating list of a shop.
func (h *Handler) ReplaceRatingIDs(ctx context.Context, req *api.ReplaceRatingIDsRequest) (*api.ReplaceRatingIDsResponse, error) {
	if req == nil || req.ShopID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	v, err := h.ctrl.ReplaceRatingIDs(ctx, model.ShopID(req.ShopID), req.RatingIDs, req.Version)
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.ReplaceRatingIDsResponse{Version: v}, nil
}

// SetStatus changes the lifecycle status of a shop.
func (h *Handler) SetStatus(ctx context.Context, req *api.SetStatusRequest) (*api.SetStatusResponse, error) {
	if req == nil || req.ShopID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	s, err := h.ctrl.SetStatus(ctx, model.ShopID(req.ShopID), model.Status(req.Status))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.SetStatusResponse{Shop: model.ShopToAPI(s)}, nil
}

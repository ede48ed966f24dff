package grpc

import (
	"context"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/favorite/internal/controller/favorite"
	"github.com/abhishek622/streetsmart/favorite/pkg/model"
	"github.com/abhishek622/streetsmart/internal/grpcutil"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	shopmodel "github.com/abhishek622/streetsmart/shop/pkg/model"
	usermodel "github.com/abhishek622/streetsmart/user/pkg/model"
)

// Handler defines a gRPC favorite API handler.
type Handler struct {
	ctrl *favorite.Controller
}

// New creates a new favorite gRPC handler.
func New(ctrl *favorite.Controller) *Handler {
	return &Handler{ctrl}
}

// AddFavorite marks a shop as favorite. The response carries no favorite
// when the call toggled an existing one off.
func (h *Handler) AddFavorite(ctx context.Context, req *api.AddFavoriteRequest) (*api.AddFavoriteResponse, error) {
	if req == nil || req.UserID == "" || req.ShopID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	e, err := h.ctrl.Add(ctx, auth.FromIncomingContext(ctx), usermodel.UserID(req.UserID), shopmodel.ShopID(req.ShopID))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	if e == nil {
		return &api.AddFavoriteResponse{}, nil
	}
	return &api.AddFavoriteResponse{Favorite: model.EntryToAPI(e)}, nil
}

// RemoveFavorite drops a shop from the favorites of a user.
func (h *Handler) RemoveFavorite(ctx context.Context, req *api.RemoveFavoriteRequest) (*api.RemoveFavoriteResponse, error) {
	if req == nil || req.UserID == "" || req.ShopID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	if err := h.ctrl.Remove(ctx, auth.FromIncomingContext(ctx), usermodel.UserID(req.UserID), shopmodel.ShopID(req.ShopID)); err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.RemoveFavoriteResponse{}, nil
}

// ListFavorites returns the favorites of a user.
func (h *Handler) ListFavorites(ctx context.Context, req *api.ListFavoritesRequest) (*api.ListFavoritesResponse, error) {
	if req == nil || req.UserID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	entries, err := h.ctrl.List(ctx, auth.FromIncomingContext(ctx), usermodel.UserID(req.UserID))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	res := &api.ListFavoritesResponse{Favorites: make([]*api.Favorite, 0, len(entries))}
	for _, e := range entries {
		res.Favorites = append(res.Favorites, model.EntryToAPI(e))
	}
	return res, nil
}

func (h *Handler) IsFavorite(ctx context.Context, req *api.IsFavoriteRequest) (*api.IsFavoriteResponse, error) {
	if req == nil || req.UserID == "" || req.ShopID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	ok, err := h.ctrl.IsFavorite(ctx, usermodel.UserID(req.UserID), shopmodel.ShopID(req.ShopID))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.IsFavoriteResponse{Favorite: ok}, nil
}

func (h *Handler) CountFavorites(ctx context.Context, req *api.CountFavoritesRequest) (*api.CountFavoritesResponse, error) {
	if req == nil || req.UserID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	n, err := h.ctrl.Count(ctx, auth.FromIncomingContext(ctx), usermodel.UserID(req.UserID))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.CountFavoritesResponse{Count: n}, nil
}

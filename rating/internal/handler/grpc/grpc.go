package grpc

import (
	"context"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/internal/grpcutil"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/rating/internal/controller/rating"
	"github.com/abhishek622/streetsmart/rating/pkg/model"
	shopmodel "github.com/abhishek622/streetsmart/shop/pkg/model"
	usermodel "github.com/abhishek622/streetsmart/user/pkg/model"
)

// Handler defines a gRPC rating API handler.
type Handler struct {
	ctrl *rating.Controller
}

// New creates a new rating gRPC handler.
func New(ctrl *rating.Controller) *Handler {
	return &Handler{ctrl}
}

// AddRating creates a rating and records it in the user and shop projections.
func (h *Handler) AddRating(ctx context.Context, req *api.AddRatingRequest) (*api.AddRatingResponse, error) {
	if req == nil || req.UserID == "" || req.ShopID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	r, err := h.ctrl.Add(ctx, auth.FromIncomingContext(ctx), usermodel.UserID(req.UserID), shopmodel.ShopID(req.ShopID), model.Score(req.Score), req.Review)
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.AddRatingResponse{Rating: model.RatingToAPI(r)}, nil
}

// UpdateRating changes a rating owned by the caller.
func (h *Handler) UpdateRating(ctx context.Context, req *api.UpdateRatingRequest) (*api.UpdateRatingResponse, error) {
	if req == nil || req.UserID == "" || req.RatingID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	r, err := h.ctrl.Update(ctx, auth.FromIncomingContext(ctx), usermodel.UserID(req.UserID), model.RatingID(req.RatingID), model.Score(req.Score), req.Review)
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.UpdateRatingResponse{Rating: model.RatingToAPI(r)}, nil
}

// DeleteRating removes a rating owned by the caller.
func (h *Handler) DeleteRating(ctx context.Context, req *api.DeleteRatingRequest) (*api.DeleteRatingResponse, error) {
	if req == nil || req.UserID == "" || req.RatingID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	if err := h.ctrl.Delete(ctx, auth.FromIncomingContext(ctx), usermodel.UserID(req.UserID), model.RatingID(req.RatingID)); err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.DeleteRatingResponse{}, nil
}

// GetRating returns a rating by id.
func (h *Handler) GetRating(ctx context.Context, req *api.GetRatingRequest) (*api.GetRatingResponse, error) {
	if req == nil || req.RatingID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	r, err := h.ctrl.Get(ctx, model.RatingID(req.RatingID))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.GetRatingResponse{Rating: model.RatingToAPI(r)}, nil
}

// ListShopRatings returns the ratings of a shop.
func (h *Handler) ListShopRatings(ctx context.Context, req *api.ListShopRatingsRequest) (*api.ListShopRatingsResponse, error) {
	if req == nil || req.ShopID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	ratings, err := h.ctrl.ListByShop(ctx, shopmodel.ShopID(req.ShopID))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	res := &api.ListShopRatingsResponse{Ratings: make([]*api.Rating, 0, len(ratings))}
	for _, r := range ratings {
		res.Ratings = append(res.Ratings, model.RatingToAPI(r))
	}
	return res, nil
}

// CountShopRatings returns the number of ratings of a shop.
func (h *Handler) CountShopRatings(ctx context.Context, req *api.CountShopRatingsRequest) (*api.CountShopRatingsResponse, error) {
	if req == nil || req.ShopID == "" {
		return nil, grpcutil.ToStatus(consistency.ErrInvalidArgument)
	}
	n, err := h.ctrl.CountByShop(ctx, shopmodel.ShopID(req.ShopID))
	if err != nil {
		return nil, grpcutil.ToStatus(err)
	}
	return &api.CountShopRatingsResponse{Count: n}, nil
}

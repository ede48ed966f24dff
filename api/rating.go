package api

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

const ratingService = "RatingService"

var (
	RatingService_AddRating_FullMethodName        = fullMethod(ratingService, "AddRating")
	RatingService_UpdateRating_FullMethodName     = fullMethod(ratingService, "UpdateRating")
	RatingService_DeleteRating_FullMethodName     = fullMethod(ratingService, "DeleteRating")
	RatingService_GetRating_FullMethodName        = fullMethod(ratingService, "GetRating")
	RatingService_ListShopRatings_FullMethodName  = fullMethod(ratingService, "ListShopRatings")
	RatingService_CountShopRatings_FullMethodName = fullMethod(ratingService, "CountShopRatings")
)

type Rating struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	ShopID    string    `json:"shopId"`
	Score     int32     `json:"score"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AddRatingRequest struct {
	UserID string `json:"userId"`
	ShopID string `json:"shopId"`
	Score  int32  `json:"score"`
	Review string `json:"review"`
}

type AddRatingResponse struct {
	Rating *Rating `json:"rating"`
}

type UpdateRatingRequest struct {
	UserID   string `json:"userId"`
	RatingID string `json:"ratingId"`
	Score    int32  `json:"score"`
	Review   string `json:"review"`
}

type UpdateRatingResponse struct {
	Rating *Rating `json:"rating"`
}

type DeleteRatingRequest struct {
	UserID   string `json:"userId"`
	RatingID string `json:"ratingId"`
}

type DeleteRatingResponse struct{}

type GetRatingRequest struct {
	RatingID string `json:"ratingId"`
}

type GetRatingResponse struct {
	Rating *Rating `json:"rating"`
}

type ListShopRatingsRequest struct {
	ShopID string `json:"shopId"`
}

type ListShopRatingsResponse struct {
	Ratings []*Rating `json:"ratings"`
}

type CountShopRatingsRequest struct {
	ShopID string `json:"shopId"`
}

type CountShopRatingsResponse struct {
	Count int64 `json:"count"`
}

type RatingServiceServer interface {
	AddRating(context.Context, *AddRatingRequest) (*AddRatingResponse, error)
	UpdateRating(context.Context, *UpdateRatingRequest) (*UpdateRatingResponse, error)
	DeleteRating(context.Context, *DeleteRatingRequest) (*DeleteRatingResponse, error)
	GetRating(context.Context, *GetRatingRequest) (*GetRatingResponse, error)
	ListShopRatings(context.Context, *ListShopRatingsRequest) (*ListShopRatingsResponse, error)
	CountShopRatings(context.Context, *CountShopRatingsRequest) (*CountShopRatingsResponse, error)
}

func RegisterRatingServiceServer(s grpc.ServiceRegistrar, srv RatingServiceServer) {
	s.RegisterService(&grpc.ServiceDesc{
		ServiceName: packageName + "." + ratingService,
		HandlerType: (*RatingServiceServer)(nil),
		Methods: []grpc.MethodDesc{
			unary(ratingService, "AddRating", RatingServiceServer.AddRating),
			unary(ratingService, "UpdateRating", RatingServiceServer.UpdateRating),
			unary(ratingService, "DeleteRating", RatingServiceServer.DeleteRating),
			unary(ratingService, "GetRating", RatingServiceServer.GetRating),
			unary(ratingService, "ListShopRatings", RatingServiceServer.ListShopRatings),
			unary(ratingService, "CountShopRatings", RatingServiceServer.CountShopRatings),
		},
		Metadata: "rating",
	}, srv)
}

type RatingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRatingServiceClient(cc grpc.ClientConnInterface) *RatingServiceClient {
	return &RatingServiceClient{cc}
}

func (c *RatingServiceClient) AddRating(ctx context.Context, in *AddRatingRequest, opts ...grpc.CallOption) (*AddRatingResponse, error) {
	return invoke[AddRatingResponse](ctx, c.cc, RatingService_AddRating_FullMethodName, in, opts)
}

func (c *RatingServiceClient) UpdateRating(ctx context.Context, in *UpdateRatingRequest, opts ...grpc.CallOption) (*UpdateRatingResponse, error) {
	return invoke[UpdateRatingResponse](ctx, c.cc, RatingService_UpdateRating_FullMethodName, in, opts)
}

func (c *RatingServiceClient) DeleteRating(ctx context.Context, in *DeleteRatingRequest, opts ...grpc.CallOption) (*DeleteRatingResponse, error) {
	return invoke[DeleteRatingResponse](ctx, c.cc, RatingService_DeleteRating_FullMethodName, in, opts)
}

func (c *RatingServiceClient) GetRating(ctx context.Context, in *GetRatingRequest, opts ...grpc.CallOption) (*GetRatingResponse, error) {
	return invoke[GetRatingResponse](ctx, c.cc, RatingService_GetRating_FullMethodName, in, opts)
}

func (c *RatingServiceClient) ListShopRatings(ctx context.Context, in *ListShopRatingsRequest, opts ...grpc.CallOption) (*ListShopRatingsResponse, error) {
	return invoke[ListShopRatingsResponse](ctx, c.cc, RatingService_ListShopRatings_FullMethodName, in, opts)
}

func (c *RatingServiceClient) CountShopRatings(ctx context.Context, in *CountShopRatingsRequest, opts ...grpc.CallOption) (*CountShopRatingsResponse, error) {
	return invoke[CountShopRatingsResponse](ctx, c.cc, RatingService_CountShopRatings_FullMethodName, in, opts)
}

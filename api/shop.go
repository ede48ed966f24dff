package api

import (
	"context"

	"google.golang.org/grpc"
)

const shopService = "ShopService"

var (
	ShopService_RegisterShop_FullMethodName     = fullMethod(shopService, "RegisterShop")
	ShopService_GetShop_FullMethodName          = fullMethod(shopService, "GetShop")
	ShopService_ListShops_FullMethodName        = fullMethod(shopService, "ListShops")
	ShopService_ShopExists_FullMethodName       = fullMethod(shopService, "ShopExists")
	ShopService_GetBasicInfo_FullMethodName     = fullMethod(shopService, "GetBasicInfo")
	ShopService_ReplaceRatingIDs_FullMethodName = fullMethod(shopService, "ReplaceRatingIDs")
	ShopService_SetStatus_FullMethodName        = fullMethod(shopService, "SetStatus")
)

type Shop struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Address     string   `json:"address"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"ownerId"`
	Status      string   `json:"status"`
	RatingIDs   []string `json:"ratingIds"`
	Version     int64    `json:"version"`
}

type RegisterShopRequest struct {
	OwnerID     string  `json:"ownerId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type RegisterShopResponse struct {
	Shop *Shop `json:"shop"`
}

type GetShopRequest struct {
	ShopID string `json:"shopId"`
}

type GetShopResponse struct {
	Shop *Shop `json:"shop"`
}

type ListShopsRequest struct{}

type ListShopsResponse struct {
	Shops []*Shop `json:"shops"`
}

type ShopExistsRequest struct {
	ShopID string `json:"shopId"`
}

type ShopExistsResponse struct {
	Exists bool `json:"exists"`
}

type GetBasicInfoRequest struct {
	ShopID string `json:"shopId"`
}

type GetBasicInfoResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ReplaceRatingIDsRequest overwrites the rating list of a shop.
// Version must equal the version the caller read.
type ReplaceRatingIDsRequest struct {
	ShopID    string   `json:"shopId"`
	RatingIDs []string `json:"ratingIds"`
	Version   int64    `json:"version"`
}

type ReplaceRatingIDsResponse struct {
	Version int64 `json:"version"`
}

type SetStatusRequest struct {
	ShopID string `json:"shopId"`
	Status string `json:"status"`
}

type SetStatusResponse struct {
	Shop *Shop `json:"shop"`
}

type ShopServiceServer interface {
	RegisterShop(context.Context, *RegisterShopRequest) (*RegisterShopResponse, error)
	GetShop(context.Context, *GetShopRequest) (*GetShopResponse, error)
	ListShops(context.Context, *ListShopsRequest) (*ListShopsResponse, error)
	ShopExists(context.Context, *ShopExistsRequest) (*ShopExistsResponse, error)
	GetBasicInfo(context.Context, *GetBasicInfoRequest) (*GetBasicInfoResponse, error)
	ReplaceRatingIDs(context.Context, *ReplaceRatingIDsRequest) (*ReplaceRatingIDsResponse, error)
	SetStatus(context.Context, *SetStatusRequest) (*SetStatusResponse, error)
}

func RegisterShopServiceServer(s grpc.ServiceRegistrar, srv ShopServiceServer) {
	s.RegisterService(&grpc.ServiceDesc{
		ServiceName: packageName + "." + shopService,
		HandlerType: (*ShopServiceServer)(nil),
		Methods: []grpc.MethodDesc{
			unary(shopService, "RegisterShop", ShopServiceServer.RegisterShop),
			unary(shopService, "GetShop", ShopServiceServer.GetShop),
			unary(shopService, "ListShops", ShopServiceServer.ListShops),
			unary(shopService, "ShopExists", ShopServiceServer.ShopExists),
			unary(shopService, "GetBasicInfo", ShopServiceServer.GetBasicInfo),
			unary(shopService, "ReplaceRatingIDs", ShopServiceServer.ReplaceRatingIDs),
			unary(shopService, "SetStatus", ShopServiceServer.SetStatus),
		},
		Metadata: "shop",
	}, srv)
}

type ShopServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewShopServiceClient(cc grpc.ClientConnInterface) *ShopServiceClient {
	return &ShopServiceClient{cc}
}

func (c *ShopServiceClient) RegisterShop(ctx context.Context, in *RegisterShopRequest, opts ...grpc.CallOption) (*RegisterShopResponse, error) {
	return invoke[RegisterShopResponse](ctx, c.cc, ShopService_RegisterShop_FullMethodName, in, opts)
}

func (c *ShopServiceClient) GetShop(ctx context.Context, in *GetShopRequest, opts ...grpc.CallOption) (*GetShopResponse, error) {
	return invoke[GetShopResponse](ctx, c.cc, ShopService_GetShop_FullMethodName, in, opts)
}

func (c *ShopServiceClient) ListShops(ctx context.Context, in *ListShopsRequest, opts ...grpc.CallOption) (*ListShopsResponse, error) {
	return invoke[ListShopsResponse](ctx, c.cc, ShopService_ListShops_FullMethodName, in, opts)
}

func (c *ShopServiceClient) ShopExists(ctx context.Context, in *ShopExistsRequest, opts ...grpc.CallOption) (*ShopExistsResponse, error) {
	return invoke[ShopExistsResponse](ctx, c.cc, ShopService_ShopExists_FullMethodName, in, opts)
}

func (c *ShopServiceClient) GetBasicInfo(ctx context.Context, in *GetBasicInfoRequest, opts ...grpc.CallOption) (*GetBasicInfoResponse, error) {
	return invoke[GetBasicInfoResponse](ctx, c.cc, ShopService_GetBasicInfo_FullMethodName, in, opts)
}

func (c *ShopServiceClient) ReplaceRatingIDs(ctx context.Context, in *ReplaceRatingIDsRequest, opts ...grpc.CallOption) (*ReplaceRatingIDsResponse, error) {
	return invoke[ReplaceRatingIDsResponse](ctx, c.cc, ShopService_ReplaceRatingIDs_FullMethodName, in, opts)
}

func (c *ShopServiceClient) SetStatus(ctx context.Context, in *SetStatusRequest, opts ...grpc.CallOption) (*SetStatusResponse, error) {
	return invoke[SetStatusResponse](ctx, c.cc, ShopService_SetStatus_FullMethodName, in, opts)
}

package api

import (
	"context"

	"google.golang.org/grpc"
)

const favoriteService = "FavoriteService"

var (
	FavoriteService_AddFavorite_FullMethodName    = fullMethod(favoriteService, "AddFavorite")
	FavoriteService_RemoveFavorite_FullMethodName = fullMethod(favoriteService, "RemoveFavorite")
	FavoriteService_ListFavorites_FullMethodName  = fullMethod(favoriteService, "ListFavorites")
	FavoriteService_IsFavorite_FullMethodName     = fullMethod(favoriteService, "IsFavorite")
	FavoriteService_CountFavorites_FullMethodName = fullMethod(favoriteService, "CountFavorites")
)

type Favorite struct {
	ID       string `json:"id,omitempty"`
	UserID   string `json:"userId"`
	ShopID   string `json:"shopId"`
	ShopName string `json:"shopName"`
}

type AddFavoriteRequest struct {
	UserID string `json:"userId"`
	ShopID string `json:"shopId"`
}

// AddFavoriteResponse carries a nil Favorite when the call toggled an
// existing favorite off.
type AddFavoriteResponse struct {
	Favorite *Favorite `json:"favorite"`
}

type RemoveFavoriteRequest struct {
	UserID string `json:"userId"`
	ShopID string `json:"shopId"`
}

type RemoveFavoriteResponse struct{}

type ListFavoritesRequest struct {
	UserID string `json:"userId"`
}

type ListFavoritesResponse struct {
	Favorites []*Favorite `json:"favorites"`
}

type IsFavoriteRequest struct {
	UserID string `json:"userId"`
	ShopID string `json:"shopId"`
}

type IsFavoriteResponse struct {
	Favorite bool `json:"favorite"`
}

type CountFavoritesRequest struct {
	UserID string `json:"userId"`
}

type CountFavoritesResponse struct {
	Count int64 `json:"count"`
}

type FavoriteServiceServer interface {
	AddFavorite(context.Context, *AddFavoriteRequest) (*AddFavoriteResponse, error)
	RemoveFavorite(context.Context, *RemoveFavoriteRequest) (*RemoveFavoriteResponse, error)
	ListFavorites(context.Context, *ListFavoritesRequest) (*ListFavoritesResponse, error)
	IsFavorite(context.Context, *IsFavoriteRequest) (*IsFavoriteResponse, error)
	CountFavorites(context.Context, *CountFavoritesRequest) (*CountFavoritesResponse, error)
}

func RegisterFavoriteServiceServer(s grpc.ServiceRegistrar, srv FavoriteServiceServer) {
	s.RegisterService(&grpc.ServiceDesc{
		ServiceName: packageName + "." + favoriteService,
		HandlerType: (*FavoriteServiceServer)(nil),
		Methods: []grpc.MethodDesc{
			unary(favoriteService, "AddFavorite", FavoriteServiceServer.AddFavorite),
			unary(favoriteService, "RemoveFavorite", FavoriteServiceServer.RemoveFavorite),
			unary(favoriteService, "ListFavorites", FavoriteServiceServer.ListFavorites),
			unary(favoriteService, "IsFavorite", FavoriteServiceServer.IsFavorite),
			unary(favoriteService, "CountFavorites", FavoriteServiceServer.CountFavorites),
		},
		Metadata: "favorite",
	}, srv)
}

type FavoriteServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFavoriteServiceClient(cc grpc.ClientConnInterface) *FavoriteServiceClient {
	return &FavoriteServiceClient{cc}
}

func (c *FavoriteServiceClient) AddFavorite(ctx context.Context, in *AddFavoriteRequest, opts ...grpc.CallOption) (*AddFavoriteResponse, error) {
	return invoke[AddFavoriteResponse](ctx, c.cc, FavoriteService_AddFavorite_FullMethodName, in, opts)
}

func (c *FavoriteServiceClient) RemoveFavorite(ctx context.Context, in *RemoveFavoriteRequest, opts ...grpc.CallOption) (*RemoveFavoriteResponse, error) {
	return invoke[RemoveFavoriteResponse](ctx, c.cc, FavoriteService_RemoveFavorite_FullMethodName, in, opts)
}

func (c *FavoriteServiceClient) ListFavorites(ctx context.Context, in *ListFavoritesRequest, opts ...grpc.CallOption) (*ListFavoritesResponse, error) {
	return invoke[ListFavoritesResponse](ctx, c.cc, FavoriteService_ListFavorites_FullMethodName, in, opts)
}

func (c *FavoriteServiceClient) IsFavorite(ctx context.Context, in *IsFavoriteRequest, opts ...grpc.CallOption) (*IsFavoriteResponse, error) {
	return invoke[IsFavoriteResponse](ctx, c.cc, FavoriteService_IsFavorite_FullMethodName, in, opts)
}

func (c *FavoriteServiceClient) CountFavorites(ctx context.Context, in *CountFavoritesRequest, opts ...grpc.CallOption) (*CountFavoritesResponse, error) {
	return invoke[CountFavoritesResponse](ctx, c.cc, FavoriteService_CountFavorites_FullMethodName, in, opts)
}

package api

import (
	"context"

	"google.golang.org/grpc"
)

const userService = "UserService"

var (
	UserService_CreateUser_FullMethodName        = fullMethod(userService, "CreateUser")
	UserService_GetUser_FullMethodName           = fullMethod(userService, "GetUser")
	UserService_ReplaceProjection_FullMethodName = fullMethod(userService, "ReplaceProjection")
)

type User struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	FullName        string   `json:"fullName"`
	Role            string   `json:"role"`
	RatingIDs       []string `json:"ratingIds"`
	FavoriteShopIDs []string `json:"favoriteShopIds"`
	Version         int64    `json:"version"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type CreateUserResponse struct {
	User *User `json:"user"`
}

type GetUserRequest struct {
	UserID string `json:"userId"`
}

type GetUserResponse struct {
	User *User `json:"user"`
}

// ReplaceProjectionRequest overwrites the relationship lists of a user.
// Version must equal the version the caller read.
type ReplaceProjectionRequest struct {
	UserID          string   `json:"userId"`
	RatingIDs       []string `json:"ratingIds"`
	FavoriteShopIDs []string `json:"favoriteShopIds"`
	Version         int64    `json:"version"`
}

type ReplaceProjectionResponse struct {
	Version int64 `json:"version"`
}

type UserServiceServer interface {
	CreateUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error)
	GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error)
	ReplaceProjection(context.Context, *ReplaceProjectionRequest) (*ReplaceProjectionResponse, error)
}

func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&grpc.ServiceDesc{
		ServiceName: packageName + "." + userService,
		HandlerType: (*UserServiceServer)(nil),
		Methods: []grpc.MethodDesc{
			unary(userService, "CreateUser", UserServiceServer.CreateUser),
			unary(userService, "GetUser", UserServiceServer.GetUser),
			unary(userService, "ReplaceProjection", UserServiceServer.ReplaceProjection),
		},
		Metadata: "user",
	}, srv)
}

type UserServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUserServiceClient(cc grpc.ClientConnInterface) *UserServiceClient {
	return &UserServiceClient{cc}
}

func (c *UserServiceClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*CreateUserResponse, error) {
	return invoke[CreateUserResponse](ctx, c.cc, UserService_CreateUser_FullMethodName, in, opts)
}

func (c *UserServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error) {
	return invoke[GetUserResponse](ctx, c.cc, UserService_GetUser_FullMethodName, in, opts)
}

func (c *UserServiceClient) ReplaceProjection(ctx context.Context, in *ReplaceProjectionRequest, opts ...grpc.CallOption) (*ReplaceProjectionResponse, error) {
	return invoke[ReplaceProjectionResponse](ctx, c.cc, UserService_ReplaceProjection_FullMethodName, in, opts)
}

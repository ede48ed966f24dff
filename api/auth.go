package api

import (
	"context"

	"google.golang.org/grpc"
)

const authService = "AuthService"

var (
	AuthService_GetToken_FullMethodName      = fullMethod(authService, "GetToken")
	AuthService_ValidateToken_FullMethodName = fullMethod(authService, "ValidateToken")
)

type GetTokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type GetTokenResponse struct {
	Token string `json:"token"`
}

type ValidateTokenRequest struct {
	Token string `json:"token"`
}

type ValidateTokenResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AuthServiceServer interface {
	GetToken(context.Context, *GetTokenRequest) (*GetTokenResponse, error)
	ValidateToken(context.Context, *ValidateTokenRequest) (*ValidateTokenResponse, error)
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&grpc.ServiceDesc{
		ServiceName: packageName + "." + authService,
		HandlerType: (*AuthServiceServer)(nil),
		Methods: []grpc.MethodDesc{
			unary(authService, "GetToken", AuthServiceServer.GetToken),
			unary(authService, "ValidateToken", AuthServiceServer.ValidateToken),
		},
		Metadata: "auth",
	}, srv)
}

type AuthServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) *AuthServiceClient {
	return &AuthServiceClient{cc}
}

func (c *AuthServiceClient) GetToken(ctx context.Context, in *GetTokenRequest, opts ...grpc.CallOption) (*GetTokenResponse, error) {
	return invoke[GetTokenResponse](ctx, c.cc, AuthService_GetToken_FullMethodName, in, opts)
}

func (c *AuthServiceClient) ValidateToken(ctx context.Context, in *ValidateTokenRequest, opts ...grpc.CallOption) (*ValidateTokenResponse, error) {
	return invoke[ValidateTokenResponse](ctx, c.cc, AuthService_ValidateToken_FullMethodName, in, opts)
}

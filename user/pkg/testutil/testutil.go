package testutil

import (
	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/user/internal/controller/user"
	grpchandler "github.com/abhishek622/streetsmart/user/internal/handler/grpc"
	"github.com/abhishek622/streetsmart/user/internal/repository/memory"
)

// NewTestUserGRPCServer creates a new user gRPC server backed by memory.
func NewTestUserGRPCServer() api.UserServiceServer {
	r := memory.New()
	ctrl := user.New(r)
	return grpchandler.New(ctrl)
}

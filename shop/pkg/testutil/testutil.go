package testutil

import (
	"time"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/pkg/discovery"
	"github.com/abhishek622/streetsmart/shop/internal/controller/shop"
	approvalgateway "github.com/abhishek622/streetsmart/shop/internal/gateway/approval/grpc"
	grpchandler "github.com/abhishek622/streetsmart/shop/internal/handler/grpc"
	"github.com/abhishek622/streetsmart/shop/internal/repository/memory"
	"go.uber.org/zap"
)

// NewTestShopGRPCServer creates a new shop gRPC server backed by memory that
// opens approvals through the approval service found in registry.
func NewTestShopGRPCServer(registry discovery.Registry) api.ShopServiceServer {
	r := memory.New()
	approvals := approvalgateway.New(registry, nil, 5*time.Second)
	ctrl := shop.New(r, approvals, zap.NewNop())
	return grpchandler.New(ctrl)
}

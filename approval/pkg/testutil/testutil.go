package testutil

import (
	"time"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/approval/internal/controller/approval"
	grpchandler "github.com/abhishek622/streetsmart/approval/internal/handler/grpc"
	"github.com/abhishek622/streetsmart/approval/internal/repository/memory"
	shopgateway "github.com/abhishek622/streetsmart/internal/gateway/shop/grpc"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/pkg/discovery"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// NewTestApprovalGRPCServer creates a new approval gRPC server backed by
// memory that updates shops through the shop service found in registry.
func NewTestApprovalGRPCServer(registry discovery.Registry, reporter consistency.Reporter) api.ApprovalServiceServer {
	shops := shopgateway.New(registry, nil, 5*time.Second)
	ctrl := approval.New(memory.New(), shops, consistency.NewPropagator(zap.NewNop(), reporter), tally.NoopScope)
	return grpchandler.New(ctrl)
}

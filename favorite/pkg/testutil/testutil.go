package testutil

import (
	"time"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/favorite/internal/controller/favorite"
	grpchandler "github.com/abhishek622/streetsmart/favorite/internal/handler/grpc"
	"github.com/abhishek622/streetsmart/favorite/internal/repository/memory"
	"github.com/abhishek622/streetsmart/favorite/pkg/model"
	shopgateway "github.com/abhishek622/streetsmart/internal/gateway/shop/grpc"
	usergateway "github.com/abhishek622/streetsmart/internal/gateway/user/grpc"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/pkg/discovery"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// NewTestFavoriteGRPCServer creates a new favorite gRPC server backed by
// memory that reaches the user and shop services through registry.
func NewTestFavoriteGRPCServer(registry discovery.Registry, policy model.DuplicatePolicy, reporter consistency.Reporter) api.FavoriteServiceServer {
	users := usergateway.New(registry, nil, 5*time.Second)
	shops := shopgateway.New(registry, nil, 5*time.Second)
	ctrl := favorite.New(memory.New(), users, shops, consistency.NewPropagator(zap.NewNop(), reporter), policy, tally.NoopScope, zap.NewNop())
	return grpchandler.New(ctrl)
}

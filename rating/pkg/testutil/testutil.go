package testutil

import (
	"time"

	"github.com/abhishek622/streetsmart/api"
	shopgateway "github.com/abhishek622/streetsmart/internal/gateway/shop/grpc"
	usergateway "github.com/abhishek622/streetsmart/internal/gateway/user/grpc"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/pkg/discovery"
	"github.com/abhishek622/streetsmart/rating/internal/controller/rating"
	grpchandler "github.com/abhishek622/streetsmart/rating/internal/handler/grpc"
	"github.com/abhishek622/streetsmart/rating/internal/repository/memory"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// NewTestRatingGRPCServer creates a new rating gRPC server backed by memory
// that reaches the user and shop services through registry. Partial
// successes are sent to reporter, which may be nil.
func NewTestRatingGRPCServer(registry discovery.Registry, reporter consistency.Reporter) api.RatingServiceServer {
	r := memory.New()
	users := usergateway.New(registry, nil, 5*time.Second)
	shops := shopgateway.New(registry, nil, 5*time.Second)
	ctrl := rating.New(r, users, shops, consistency.NewPropagator(zap.NewNop(), reporter), tally.NoopScope)
	return grpchandler.New(ctrl)
}

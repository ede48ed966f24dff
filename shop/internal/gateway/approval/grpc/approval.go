package grpc

import (
	"context"
	"time"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/internal/grpcutil"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/discovery"
	"github.com/abhishek622/streetsmart/shop/pkg/model"
	"google.golang.org/grpc/credentials"
)

// Gateway defines a gRPC gateway for the approval service.
type Gateway struct {
	registry discovery.Registry
	creds    credentials.TransportCredentials
	timeout  time.Duration
}

// New creates a new gRPC gateway for the approval service.
func New(registry discovery.Registry, creds credentials.TransportCredentials, timeout time.Duration) *Gateway {
	return &Gateway{registry, creds, timeout}
}

// Create opens the pending approval of a newly registered shop.
func (g *Gateway) Create(ctx context.Context, shopID model.ShopID, cred auth.Credential) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	conn, err := grpcutil.ServiceConnection(ctx, "approval", g.registry, g.creds)
	if err != nil {
		return err
	}
	defer conn.Close()
	client := api.NewApprovalServiceClient(conn)
	_, err = client.CreateApproval(auth.NewOutgoingContext(ctx, cred), &api.CreateApprovalRequest{ShopID: string(shopID)})
	return grpcutil.FromStatus(err)
}

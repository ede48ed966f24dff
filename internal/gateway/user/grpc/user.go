package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/internal/grpcutil"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/pkg/discovery"
	"github.com/abhishek622/streetsmart/user/pkg/model"
	"google.golang.org/grpc/credentials"
)

const serviceName = "user"

// Gateway defines a gRPC gateway for the user service.
type Gateway struct {
	registry discovery.Registry
	creds    credentials.TransportCredentials
	timeout  time.Duration
}

// New creates a new gRPC gateway for the user service. Every call is bounded
// by timeout when it is positive.
func New(registry discovery.Registry, creds credentials.TransportCredentials, timeout time.Duration) *Gateway {
	return &Gateway{registry, creds, timeout}
}

func (g *Gateway) client(ctx context.Context, cred auth.Credential) (context.Context, *api.UserServiceClient, func(), error) {
	cancel := func() {}
	if g.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
	}
	conn, err := grpcutil.ServiceConnection(ctx, serviceName, g.registry, g.creds)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	return auth.NewOutgoingContext(ctx, cred), api.NewUserServiceClient(conn), func() {
		conn.Close()
		cancel()
	}, nil
}

// Get returns the user with the given id.
func (g *Gateway) Get(ctx context.Context, id model.UserID, cred auth.Credential) (*model.User, error) {
	ctx, client, done, err := g.client(ctx, cred)
	if err != nil {
		return nil, err
	}
	defer done()
	resp, err := client.GetUser(ctx, &api.GetUserRequest{UserID: string(id)})
	if err != nil {
		return nil, translate(err, id)
	}
	return model.UserFromAPI(resp.User), nil
}

// ReplaceProjection overwrites the relationship lists of a user.
func (g *Gateway) ReplaceProjection(ctx context.Context, id model.UserID, p model.Projection, cred auth.Credential) (int64, error) {
	ctx, client, done, err := g.client(ctx, cred)
	if err != nil {
		return 0, err
	}
	defer done()
	resp, err := client.ReplaceProjection(ctx, &api.ReplaceProjectionRequest{
		UserID:          string(id),
		RatingIDs:       p.RatingIDs,
		FavoriteShopIDs: p.FavoriteShopIDs,
		Version:         p.Version,
	})
	if err != nil {
		return 0, translate(err, id)
	}
	return resp.Version, nil
}

func translate(err error, id model.UserID) error {
	err = grpcutil.FromStatus(err)
	if errors.Is(err, consistency.ErrNotFound) {
		return consistency.NotFound(consistency.KindUser, string(id))
	}
	return err
}

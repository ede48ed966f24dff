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
	"github.com/abhishek622/streetsmart/shop/pkg/model"
	"google.golang.org/grpc/credentials"
)

const serviceName = "shop"

// Gateway defines a gRPC gateway for the shop service.
type Gateway struct {
	registry discovery.Registry
	creds    credentials.TransportCredentials
	timeout  time.Duration
}

// New creates a new gRPC gateway for the shop service. Every call is bounded
// by timeout when it is positive.
func New(registry discovery.Registry, creds credentials.TransportCredentials, timeout time.Duration) *Gateway {
	return &Gateway{registry, creds, timeout}
}

func (g *Gateway) client(ctx context.Context, cred auth.Credential) (context.Context, *api.ShopServiceClient, func(), error) {
	cancel := func() {}
	if g.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
	}
	conn, err := grpcutil.ServiceConnection(ctx, serviceName, g.registry, g.creds)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	return auth.NewOutgoingContext(ctx, cred), api.NewShopServiceClient(conn), func() {
		conn.Close()
		cancel()
	}, nil
}

// Exists reports whether the shop is stored.
func (g *Gateway) Exists(ctx context.Context, id model.ShopID, cred auth.Credential) (bool, error) {
	ctx, client, done, err := g.client(ctx, cred)
	if err != nil {
		return false, err
	}
	defer done()
	resp, err := client.ShopExists(ctx, &api.ShopExistsRequest{ShopID: string(id)})
	if err != nil {
		return false, translate(err, id)
	}
	return resp.Exists, nil
}

// GetBasicInfo returns the name of the shop.
func (g *Gateway) GetBasicInfo(ctx context.Context, id model.ShopID, cred auth.Credential) (string, error) {
	ctx, client, done, err := g.client(ctx, cred)
	if err != nil {
		return "", err
	}
	defer done()
	resp, err := client.GetBasicInfo(ctx, &api.GetBasicInfoRequest{ShopID: string(id)})
	if err != nil {
		return "", translate(err, id)
	}
	return resp.Name, nil
}

// Get returns the shop together with its rating projection.
func (g *Gateway) Get(ctx context.Context, id model.ShopID, cred auth.Credential) (*model.Shop, error) {
	ctx, client, done, err := g.client(ctx, cred)
	if err != nil {
		return nil, err
	}
	defer done()
	resp, err := client.GetShop(ctx, &api.GetShopRequest{ShopID: string(id)})
	if err != nil {
		return nil, translate(err, id)
	}
	return model.ShopFromAPI(resp.Shop), nil
}

// ReplaceRatingIDs overwrites the rating list of the shop.
func (g *Gateway) ReplaceRatingIDs(ctx context.Context, id model.ShopID, ratingIDs []string, version int64, cred auth.Credential) (int64, error) {
	ctx, client, done, err := g.client(ctx, cred)
	if err != nil {
		return 0, err
	}
	defer done()
	resp, err := client.ReplaceRatingIDs(ctx, &api.ReplaceRatingIDsRequest{ShopID: string(id), RatingIDs: ratingIDs, Version: version})
	if err != nil {
		return 0, translate(err, id)
	}
	return resp.Version, nil
}

// SetStatus changes the lifecycle status of the shop.
func (g *Gateway) SetStatus(ctx context.Context, id model.ShopID, status model.Status, cred auth.Credential) error {
	ctx, client, done, err := g.client(ctx, cred)
	if err != nil {
		return err
	}
	defer done()
	if _, err := client.SetStatus(ctx, &api.SetStatusRequest{ShopID: string(id), Status: string(status)}); err != nil {
		return translate(err, id)
	}
	return nil
}

func translate(err error, id model.ShopID) error {
	err = grpcutil.FromStatus(err)
	if errors.Is(err, consistency.ErrNotFound) {
		return consistency.NotFound(consistency.KindShop, string(id))
	}
	return err
}

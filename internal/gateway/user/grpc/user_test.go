package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/abhishek622/streetsmart/api"
	"github.com/abhishek622/streetsmart/internal/grpcutil"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/pkg/discovery/memory"
	"github.com/abhishek622/streetsmart/user/pkg/model"
	"github.com/abhishek622/streetsmart/user/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

func startUserService(t *testing.T) *memory.Registry {
	t.Helper()
	lis, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	srv := grpc.NewServer()
	api.RegisterUserServiceServer(srv, testutil.NewTestUserGRPCServer())
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	registry := memory.NewRegistry()
	require.NoError(t, registry.Register(context.Background(), "user-1", serviceName, lis.Addr().String()))
	return registry
}

func TestGateway(t *testing.T) {
	ctx := context.Background()
	registry := startUserService(t)
	g := New(registry, nil, time.Second)

	_, err := g.Get(ctx, "missing", "tok")
	assert.True(t, consistency.IsNotFound(err, consistency.KindUser))

	conn, err := grpc.NewClient(mustAddr(t, registry), grpcutil.DialOptions(nil)...)
	require.NoError(t, err)
	defer conn.Close()
	created, err := api.NewUserServiceClient(conn).CreateUser(ctx, &api.CreateUserRequest{Email: "ann@example.com", FullName: "Ann"})
	require.NoError(t, err)
	id := model.UserID(created.User.ID)

	v, err := g.ReplaceProjection(ctx, id, model.Projection{RatingIDs: []string{"r1"}, Version: 0}, "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	u, err := g.Get(ctx, id, "tok")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, u.RatingIDs)
	assert.Equal(t, int64(1), u.Version)

	_, err = g.ReplaceProjection(ctx, id, model.Projection{Version: 0}, "tok")
	assert.ErrorIs(t, err, consistency.ErrConflict)
}

func mustAddr(t *testing.T, registry *memory.Registry) string {
	t.Helper()
	addrs, err := registry.ServiceAddresses(context.Background(), serviceName)
	require.NoError(t, err)
	return addrs[0]
}

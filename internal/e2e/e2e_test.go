package e2e

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/abhishek622/streetsmart/api"
	approvaltest "github.com/abhishek622/streetsmart/approval/pkg/testutil"
	favoritemodel "github.com/abhishek622/streetsmart/favorite/pkg/model"
	favoritetest "github.com/abhishek622/streetsmart/favorite/pkg/testutil"
	"github.com/abhishek622/streetsmart/internal/grpcutil"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/pkg/discovery/memory"
	ratingtest "github.com/abhishek622/streetsmart/rating/pkg/testutil"
	shoptest "github.com/abhishek622/streetsmart/shop/pkg/testutil"
	usertest "github.com/abhishek622/streetsmart/user/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func secret() []byte { return []byte("e2e-secret") }

// reports collects the partial successes of the coordinators.
type reports struct {
	sync.Mutex
	list []consistency.PartialSuccessError
}

func (r *reports) Report(_ context.Context, e *consistency.PartialSuccessError) error {
	r.Lock()
	defer r.Unlock()
	r.list = append(r.list, *e)
	return nil
}

func (r *reports) all() []consistency.PartialSuccessError {
	r.Lock()
	defer r.Unlock()
	return append([]consistency.PartialSuccessError(nil), r.list...)
}

type system struct {
	ctx       context.Context
	users     *api.UserServiceClient
	shops     *api.ShopServiceClient
	ratings   *api.RatingServiceClient
	favorites *api.FavoriteServiceClient
	approvals *api.ApprovalServiceClient
	reports   *reports
	// shopFault makes the shop service fail ReplaceRatingIDs.
	shopFault atomic.Bool
}

func start(t *testing.T, name string, registry *memory.Registry, register func(*grpc.Server), opts ...grpc.ServerOption) *grpc.ClientConn {
	t.Helper()
	lis, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	srv := grpc.NewServer(opts...)
	register(srv)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)
	require.NoError(t, registry.Register(context.Background(), name+"-1", name, lis.Addr().String()))

	conn, err := grpc.NewClient(lis.Addr().String(), grpcutil.DialOptions(nil)...)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func newSystem(t *testing.T) *system {
	t.Helper()
	registry := memory.NewRegistry()
	s := &system{reports: &reports{}}
	verifier := auth.NewVerifier(secret)

	userConn := start(t, "user", registry, func(srv *grpc.Server) {
		api.RegisterUserServiceServer(srv, usertest.NewTestUserGRPCServer())
	}, grpc.UnaryInterceptor(auth.UnaryServerInterceptor(verifier, api.UserService_CreateUser_FullMethodName)))

	authorize := auth.UnaryServerInterceptor(verifier, api.ShopService_ShopExists_FullMethodName, api.ShopService_GetBasicInfo_FullMethodName)
	shopConn := start(t, "shop", registry, func(srv *grpc.Server) {
		api.RegisterShopServiceServer(srv, shoptest.NewTestShopGRPCServer(registry))
	}, grpc.ChainUnaryInterceptor(authorize, func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if info.FullMethod == api.ShopService_ReplaceRatingIDs_FullMethodName && s.shopFault.Load() {
			return nil, status.Error(codes.Unavailable, "connection reset")
		}
		return handler(ctx, req)
	}))

	approvalConn := start(t, "approval", registry, func(srv *grpc.Server) {
		api.RegisterApprovalServiceServer(srv, approvaltest.NewTestApprovalGRPCServer(registry, s.reports))
	})
	ratingConn := start(t, "rating", registry, func(srv *grpc.Server) {
		api.RegisterRatingServiceServer(srv, ratingtest.NewTestRatingGRPCServer(registry, s.reports))
	})
	favoriteConn := start(t, "favorite", registry, func(srv *grpc.Server) {
		api.RegisterFavoriteServiceServer(srv, favoritetest.NewTestFavoriteGRPCServer(registry, favoritemodel.DuplicateToggle, s.reports))
	})

	token, err := auth.Issue(secret, "admin", "ADMIN", 0)
	require.NoError(t, err)
	s.ctx = auth.NewOutgoingContext(context.Background(), auth.Credential(token))
	s.users = api.NewUserServiceClient(userConn)
	s.shops = api.NewShopServiceClient(shopConn)
	s.ratings = api.NewRatingServiceClient(ratingConn)
	s.favorites = api.NewFavoriteServiceClient(favoriteConn)
	s.approvals = api.NewApprovalServiceClient(approvalConn)
	return s
}

func (s *system) user(t *testing.T, email string) string {
	t.Helper()
	res, err := s.users.CreateUser(s.ctx, &api.CreateUserRequest{Email: email, FullName: email})
	require.NoError(t, err)
	return res.User.ID
}

func (s *system) shop(t *testing.T, name string) string {
	t.Helper()
	res, err := s.shops.RegisterShop(s.ctx, &api.RegisterShopRequest{OwnerID: "owner", Name: name, Category: "CAFE"})
	require.NoError(t, err)
	return res.Shop.ID
}

func (s *system) getUser(t *testing.T, id string) *api.User {
	t.Helper()
	res, err := s.users.GetUser(s.ctx, &api.GetUserRequest{UserID: id})
	require.NoError(t, err)
	return res.User
}

func (s *system) getShop(t *testing.T, id string) *api.Shop {
	t.Helper()
	res, err := s.shops.GetShop(s.ctx, &api.GetShopRequest{ShopID: id})
	require.NoError(t, err)
	return res.Shop
}

func TestFavoriteToggle(t *testing.T) {
	s := newSystem(t)
	u1, s1 := s.user(t, "u1@example.com"), s.shop(t, "Amber Cafe")

	res, err := s.favorites.AddFavorite(s.ctx, &api.AddFavoriteRequest{UserID: u1, ShopID: s1})
	require.NoError(t, err)
	require.NotNil(t, res.Favorite)
	assert.Equal(t, "Amber Cafe", res.Favorite.ShopName)
	assert.Equal(t, []string{s1}, s.getUser(t, u1).FavoriteShopIDs)
	is, err := s.favorites.IsFavorite(s.ctx, &api.IsFavoriteRequest{UserID: u1, ShopID: s1})
	require.NoError(t, err)
	assert.True(t, is.Favorite)

	res, err = s.favorites.AddFavorite(s.ctx, &api.AddFavoriteRequest{UserID: u1, ShopID: s1})
	require.NoError(t, err)
	assert.Nil(t, res.Favorite)
	assert.Empty(t, s.getUser(t, u1).FavoriteShopIDs)
	is, err = s.favorites.IsFavorite(s.ctx, &api.IsFavoriteRequest{UserID: u1, ShopID: s1})
	require.NoError(t, err)
	assert.False(t, is.Favorite)

	_, err = s.favorites.RemoveFavorite(s.ctx, &api.RemoveFavoriteRequest{UserID: u1, ShopID: s1})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestRatingProjections(t *testing.T) {
	s := newSystem(t)
	u1, u2, s1 := s.user(t, "u1@example.com"), s.user(t, "u2@example.com"), s.shop(t, "Amber Cafe")

	res, err := s.ratings.AddRating(s.ctx, &api.AddRatingRequest{UserID: u1, ShopID: s1, Score: 4, Review: "good"})
	require.NoError(t, err)
	r1 := res.Rating.ID
	assert.Contains(t, s.getUser(t, u1).RatingIDs, r1)
	assert.Contains(t, s.getShop(t, s1).RatingIDs, r1)

	_, err = s.ratings.UpdateRating(s.ctx, &api.UpdateRatingRequest{UserID: u2, RatingID: r1, Score: 1})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	_, err = s.ratings.DeleteRating(s.ctx, &api.DeleteRatingRequest{UserID: u2, RatingID: r1})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	got, err := s.ratings.GetRating(s.ctx, &api.GetRatingRequest{RatingID: r1})
	require.NoError(t, err)
	assert.Equal(t, int32(4), got.Rating.Score)
	assert.Equal(t, "good", got.Rating.Review)
	assert.Contains(t, s.getUser(t, u1).RatingIDs, r1)
	assert.Contains(t, s.getShop(t, s1).RatingIDs, r1)

	_, err = s.ratings.DeleteRating(s.ctx, &api.DeleteRatingRequest{UserID: u1, RatingID: r1})
	require.NoError(t, err)
	assert.NotContains(t, s.getUser(t, u1).RatingIDs, r1)
	assert.NotContains(t, s.getShop(t, s1).RatingIDs, r1)
	_, err = s.ratings.GetRating(s.ctx, &api.GetRatingRequest{RatingID: r1})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestRatingPartialFailure(t *testing.T) {
	s := newSystem(t)
	u1, s1 := s.user(t, "u1@example.com"), s.shop(t, "Amber Cafe")
	s.shopFault.Store(true)

	_, err := s.ratings.AddRating(s.ctx, &api.AddRatingRequest{UserID: u1, ShopID: s1, Score: 5})
	require.Equal(t, codes.DataLoss, status.Code(err))
	assert.ErrorIs(t, grpcutil.FromStatus(err), consistency.ErrPartialSuccess)

	reported := s.reports.all()
	require.Len(t, reported, 1)
	assert.Equal(t, "shop-store.replace-rating-ids", reported[0].Failed)
	assert.Contains(t, status.Convert(err).Message(), reported[0].ResourceID)

	got, err := s.ratings.GetRating(s.ctx, &api.GetRatingRequest{RatingID: reported[0].ResourceID})
	require.NoError(t, err)
	assert.Equal(t, u1, got.Rating.AuthorID)
	assert.Contains(t, s.getUser(t, u1).RatingIDs, reported[0].ResourceID)
	assert.Empty(t, s.getShop(t, s1).RatingIDs)
}

func TestShopApproval(t *testing.T) {
	s := newSystem(t)
	s2 := s.shop(t, "Bakery")
	assert.Equal(t, "PENDING", s.getShop(t, s2).Status)

	pending, err := s.approvals.ListPending(s.ctx, &api.ListPendingRequest{})
	require.NoError(t, err)
	require.Len(t, pending.Approvals, 1)
	assert.Equal(t, s2, pending.Approvals[0].ShopID)

	res, err := s.approvals.Approve(s.ctx, &api.ApproveRequest{ShopID: s2})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", res.Approval.Status)
	assert.Equal(t, "ACTIVE", s.getShop(t, s2).Status)

	_, err = s.approvals.Reject(s.ctx, &api.RejectRequest{ShopID: s2, Reason: "late"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	_, err = s.approvals.Approve(s.ctx, &api.ApproveRequest{ShopID: s2})
	assert.ErrorIs(t, grpcutil.FromStatus(err), consistency.ErrInvalidState)
	assert.Equal(t, "ACTIVE", s.getShop(t, s2).Status)

	count, err := s.approvals.CountPending(s.ctx, &api.CountPendingRequest{})
	require.NoError(t, err)
	assert.Zero(t, count.Count)
}

func TestMissingCredential(t *testing.T) {
	s := newSystem(t)
	u1, s1 := s.user(t, "u1@example.com"), s.shop(t, "Amber Cafe")

	_, err := s.favorites.AddFavorite(context.Background(), &api.AddFavoriteRequest{UserID: u1, ShopID: s1})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = s.ratings.AddRating(context.Background(), &api.AddRatingRequest{UserID: u1, ShopID: s1, Score: 3})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Empty(t, s.getUser(t, u1).FavoriteShopIDs)
	assert.Empty(t, s.getUser(t, u1).RatingIDs)
}

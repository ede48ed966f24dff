package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abhishek622/streetsmart/internal/gateway/mock"
	"github.com/abhishek622/streetsmart/internal/httputil"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/rating/internal/controller/rating"
	"github.com/abhishek622/streetsmart/rating/internal/repository/memory"
	"github.com/abhishek622/streetsmart/rating/pkg/model"
	shopmodel "github.com/abhishek622/streetsmart/shop/pkg/model"
	usermodel "github.com/abhishek622/streetsmart/user/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally/v4"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newServer(t *testing.T) (http.Handler, *memory.Repository, *mock.MockUserStore, *mock.MockShopStore) {
	t.Helper()
	mc := gomock.NewController(t)
	repo := memory.New()
	users := mock.NewMockUserStore(mc)
	shops := mock.NewMockShopStore(mc)
	ctrl := rating.New(repo, users, shops, consistency.NewPropagator(zap.NewNop(), nil), tally.NoopScope)
	return httputil.NewRouter(New(ctrl)), repo, users, shops
}

func do(h http.Handler, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if authorized {
		req.Header.Set("Authorization", "Bearer tok")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestAdd(t *testing.T) {
	h, _, users, shops := newServer(t)
	users.EXPECT().Get(gomock.Any(), usermodel.UserID("u1"), gomock.Any()).Return(&usermodel.User{ID: "u1"}, nil).Times(2)
	shops.EXPECT().Exists(gomock.Any(), shopmodel.ShopID("s1"), gomock.Any()).Return(true, nil)
	users.EXPECT().ReplaceProjection(gomock.Any(), usermodel.UserID("u1"), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	shops.EXPECT().Get(gomock.Any(), shopmodel.ShopID("s1"), gomock.Any()).Return(&shopmodel.Shop{ID: "s1"}, nil)
	shops.EXPECT().ReplaceRatingIDs(gomock.Any(), shopmodel.ShopID("s1"), gomock.Any(), int64(0), gomock.Any()).Return(int64(1), nil)

	w := do(h, http.MethodPost, "/api/ratings/add?userId=u1&shopId=s1", `{"score":4,"review":"ok"}`, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var got model.Rating
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, model.Score(4), got.Score)
	assert.Equal(t, "u1", got.AuthorID)
}

func TestErrors(t *testing.T) {
	h, repo, _, _ := newServer(t)
	require.NoError(t, repo.Put(context.Background(), &model.Rating{ID: "r1", AuthorID: "u1", ShopID: "s1", Score: 3}))

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		authorized bool
		want       int
	}{
		{"missing credential", http.MethodPost, "/api/ratings/add?userId=u1&shopId=s1", `{"score":4}`, false, http.StatusUnauthorized},
		{"score out of range", http.MethodPost, "/api/ratings/add?userId=u1&shopId=s1", `{"score":9}`, true, http.StatusBadRequest},
		{"missing shop id", http.MethodPost, "/api/ratings/add?userId=u1", `{"score":4}`, true, http.StatusBadRequest},
		{"update by other user", http.MethodPut, "/api/ratings/r1?userId=u2", `{"score":4}`, true, http.StatusForbidden},
		{"delete unknown rating", http.MethodDelete, "/api/ratings/nope?userId=u1", "", true, http.StatusNotFound},
		{"get unknown rating", http.MethodGet, "/api/ratings/nope", "", false, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(h, tt.method, tt.target, tt.body, tt.authorized)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestReads(t *testing.T) {
	h, repo, _, _ := newServer(t)
	require.NoError(t, repo.Put(context.Background(), &model.Rating{ID: "r1", AuthorID: "u1", ShopID: "s1", Score: 3}))

	w := do(h, http.MethodGet, "/api/ratings/count/s1", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "1", w.Body.String())

	w = do(h, http.MethodGet, "/api/ratings/shops/s2", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = do(h, http.MethodGet, "/api/ratings/r1", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
}

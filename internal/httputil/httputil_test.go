package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{consistency.ErrUnauthenticated, http.StatusUnauthorized},
		{consistency.NotFound(consistency.KindShop, "s1"), http.StatusNotFound},
		{consistency.ErrUnauthorized, http.StatusForbidden},
		{fmt.Errorf("wrap: %w", consistency.ErrConflict), http.StatusConflict},
		{consistency.ErrInvalidState, http.StatusConflict},
		{consistency.ErrInvalidArgument, http.StatusBadRequest},
		{&consistency.PartialSuccessError{Err: consistency.NotFound(consistency.KindUser, "u1")}, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusCode(tt.err), tt.err.Error())
	}
}

func TestWriteErrorPartial(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, &consistency.PartialSuccessError{
		Operation:  "add-rating",
		ResourceID: "r1",
		Completed:  []string{"create-rating"},
		Failed:     "update-user-projection",
		Skipped:    []string{"update-shop-projection"},
		Err:        errors.New("timeout"),
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "r1", body.ResourceID)
	assert.Equal(t, []string{"create-rating"}, body.Completed)
	assert.Equal(t, "update-user-projection", body.Failed)
	assert.Equal(t, []string{"update-shop-projection"}, body.Skipped)
}

func TestWriteErrorPlain(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, consistency.NotFound(consistency.KindRating, "r1"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var raw map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&raw))
	assert.NotContains(t, raw, "resourceId")
	assert.Contains(t, raw, "error")
}

type pingHandler struct{}

func (pingHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
}

func TestNewRouter(t *testing.T) {
	h := NewRouter(pingHandler{})
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

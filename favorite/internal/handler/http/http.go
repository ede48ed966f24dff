package http

import (
	"fmt"
	"net/http"

	"github.com/abhishek622/streetsmart/favorite/internal/controller/favorite"
	"github.com/abhishek622/streetsmart/favorite/pkg/model"
	"github.com/abhishek622/streetsmart/internal/httputil"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	shopmodel "github.com/abhishek622/streetsmart/shop/pkg/model"
	usermodel "github.com/abhishek622/streetsmart/user/pkg/model"
	"github.com/gorilla/mux"
)

// Handler defines a favorite service controller HTTP handler.
type Handler struct {
	ctrl *favorite.Controller
}

// New creates a new favorite service HTTP handler.
func New(ctrl *favorite.Controller) *Handler {
	return &Handler{ctrl}
}

// RegisterRoutes adds the favorite routes to r.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/favorites/user/{userId}", h.list).Methods(http.MethodGet)
	r.HandleFunc("/api/favorites/count/{userId}", h.count).Methods(http.MethodGet)
	r.HandleFunc("/api/favorites/{shopId}/is-favorite", h.isFavorite).Methods(http.MethodGet)
	r.HandleFunc("/api/favorites/{shopId}", h.add).Methods(http.MethodPost)
	r.HandleFunc("/api/favorites/{shopId}", h.remove).Methods(http.MethodDelete)
}

func userParam(r *http.Request) (usermodel.UserID, error) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		return "", fmt.Errorf("%w: userId is required", consistency.ErrInvalidArgument)
	}
	return usermodel.UserID(userID), nil
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	userID, err := userParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	e, err := h.ctrl.Add(r.Context(), auth.FromRequest(r), userID, shopmodel.ShopID(mux.Vars(r)["shopId"]))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if e == nil {
		// Toggled off.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, e)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	userID, err := userParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.ctrl.Remove(r.Context(), auth.FromRequest(r), userID, shopmodel.ShopID(mux.Vars(r)["shopId"])); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.List(r.Context(), auth.FromRequest(r), usermodel.UserID(mux.Vars(r)["userId"]))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if res == nil {
		res = []*model.Entry{}
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) isFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := userParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	ok, err := h.ctrl.IsFavorite(r.Context(), userID, shopmodel.ShopID(mux.Vars(r)["shopId"]))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ok)
}

func (h *Handler) count(w http.ResponseWriter, r *http.Request) {
	n, err := h.ctrl.Count(r.Context(), auth.FromRequest(r), usermodel.UserID(mux.Vars(r)["userId"]))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, n)
}

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/abhishek622/streetsmart/internal/httputil"
	"github.com/abhishek622/streetsmart/pkg/auth"
	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/abhishek622/streetsmart/rating/internal/controller/rating"
	"github.com/abhishek622/streetsmart/rating/pkg/model"
	shopmodel "github.com/abhishek622/streetsmart/shop/pkg/model"
	usermodel "github.com/abhishek622/streetsmart/user/pkg/model"
	"github.com/gorilla/mux"
)

// Handler defines a rating service controller HTTP handler.
type Handler struct {
	ctrl *rating.Controller
}

// New creates a new rating service HTTP handler.
func New(ctrl *rating.Controller) *Handler {
	return &Handler{ctrl}
}

// RegisterRoutes adds the rating routes to r.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/ratings/add", h.add).Methods(http.MethodPost)
	r.HandleFunc("/api/ratings/shops/{shopId}", h.listByShop).Methods(http.MethodGet)
	r.HandleFunc("/api/ratings/count/{shopId}", h.countByShop).Methods(http.MethodGet)
	r.HandleFunc("/api/ratings/{ratingId}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/api/ratings/{ratingId}", h.update).Methods(http.MethodPut)
	r.HandleFunc("/api/ratings/{ratingId}", h.delete).Methods(http.MethodDelete)
}

type ratingBody struct {
	Score  int    `json:"score"`
	Review string `json:"review"`
}

func decode(r *http.Request) (ratingBody, error) {
	var body ratingBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return body, fmt.Errorf("%w: %v", consistency.ErrInvalidArgument, err)
	}
	if !model.Score(body.Score).Valid() {
		return body, fmt.Errorf("%w: score must be between %d and %d", consistency.ErrInvalidArgument, model.MinScore, model.MaxScore)
	}
	return body, nil
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	userID, shopID := r.URL.Query().Get("userId"), r.URL.Query().Get("shopId")
	if userID == "" || shopID == "" {
		httputil.WriteError(w, fmt.Errorf("%w: userId and shopId are required", consistency.ErrInvalidArgument))
		return
	}
	body, err := decode(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	res, err := h.ctrl.Add(r.Context(), auth.FromRequest(r), usermodel.UserID(userID), shopmodel.ShopID(shopID), model.Score(body.Score), body.Review)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, res)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		httputil.WriteError(w, fmt.Errorf("%w: userId is required", consistency.ErrInvalidArgument))
		return
	}
	body, err := decode(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	res, err := h.ctrl.Update(r.Context(), auth.FromRequest(r), usermodel.UserID(userID), model.RatingID(mux.Vars(r)["ratingId"]), model.Score(body.Score), body.Review)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		httputil.WriteError(w, fmt.Errorf("%w: userId is required", consistency.ErrInvalidArgument))
		return
	}
	if err := h.ctrl.Delete(r.Context(), auth.FromRequest(r), usermodel.UserID(userID), model.RatingID(mux.Vars(r)["ratingId"])); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.Get(r.Context(), model.RatingID(mux.Vars(r)["ratingId"]))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) listByShop(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.ListByShop(r.Context(), shopmodel.ShopID(mux.Vars(r)["shopId"]))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if res == nil {
		res = []*model.Rating{}
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) countByShop(w http.ResponseWriter, r *http.Request) {
	n, err := h.ctrl.CountByShop(r.Context(), shopmodel.ShopID(mux.Vars(r)["shopId"]))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, n)
}

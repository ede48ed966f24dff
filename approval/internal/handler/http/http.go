package http

import (
	"net/http"

	"github.com/abhishek622/streetsmart/approval/internal/controller/approval"
	"github.com/abhishek622/streetsmart/approval/pkg/model"
	"github.com/abhishek622/streetsmart/internal/httputil"
	"github.com/abhishek622/streetsmart/pkg/auth"
	shopmodel "github.com/abhishek622/streetsmart/shop/pkg/model"
	"github.com/gorilla/mux"
)

// Handler defines an approval service controller HTTP handler.
type Handler struct {
	ctrl *approval.Controller
}

// New creates a new approval service HTTP handler.
func New(ctrl *approval.Controller) *Handler {
	return &Handler{ctrl}
}

// RegisterRoutes adds the approval routes to r.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/approvals/pending", h.listPending).Methods(http.MethodGet)
	r.HandleFunc("/api/approvals/pending/count", h.countPending).Methods(http.MethodGet)
	r.HandleFunc("/api/approvals/{shopId}/approve", h.approve).Methods(http.MethodPost)
	r.HandleFunc("/api/approvals/{shopId}/reject", h.reject).Methods(http.MethodPost)
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	a, err := h.ctrl.Approve(r.Context(), auth.FromRequest(r), shopmodel.ShopID(mux.Vars(r)["shopId"]))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	a, err := h.ctrl.Reject(r.Context(), auth.FromRequest(r), shopmodel.ShopID(mux.Vars(r)["shopId"]), r.URL.Query().Get("reason"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) listPending(w http.ResponseWriter, r *http.Request) {
	res, err := h.ctrl.ListPending(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if res == nil {
		res = []*model.Approval{}
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) countPending(w http.ResponseWriter, r *http.Request) {
	n, err := h.ctrl.CountPending(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, n)
}

// Package httputil holds the JSON response helpers of the client-facing HTTP handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abhishek622/streetsmart/pkg/consistency"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// ErrorResponse is the body written for failed requests.
type ErrorResponse struct {
	Error      string   `json:"error"`
	ResourceID string   `json:"resourceId,omitempty"`
	Completed  []string `json:"completed,omitempty"`
	Failed     string   `json:"failed,omitempty"`
	Skipped    []string `json:"skipped,omitempty"`
}

// StatusCode maps a controller error to an HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, consistency.ErrPartialSuccess):
		return http.StatusBadGateway
	case errors.Is(err, consistency.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, consistency.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, consistency.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, consistency.ErrConflict), errors.Is(err, consistency.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, consistency.ErrInvalidArgument):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// WriteError writes err as a JSON error body. A partial success also names
// the committed resource and lists the steps by outcome.
func WriteError(w http.ResponseWriter, err error) {
	body := ErrorResponse{Error: err.Error()}
	var partial *consistency.PartialSuccessError
	if errors.As(err, &partial) {
		body.ResourceID = partial.ResourceID
		body.Completed = partial.Completed
		body.Failed = partial.Failed
		body.Skipped = partial.Skipped
	}
	WriteJSON(w, StatusCode(err), body)
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// RouteRegisterer adds its routes to a router.
type RouteRegisterer interface {
	RegisterRoutes(r *mux.Router)
}

// NewRouter builds a CORS-enabled router serving the routes of handlers.
func NewRouter(handlers ...RouteRegisterer) http.Handler {
	r := mux.NewRouter()
	for _, h := range handlers {
		h.RegisterRoutes(r)
	}
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)
}

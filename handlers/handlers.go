package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"notenext/access"
	"notenext/accounts"
	"notenext/apperr"
	"notenext/middleware"
	"notenext/models"
)

type Handler struct {
	accounts *accounts.Service
	access   *access.Engine
}

func New(accounts *accounts.Service, access *access.Engine) *Handler {
	return &Handler{accounts: accounts, access: access}
}

// Root is the liveness probe.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "NoteNext API is running"})
}

type errorResponse struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// WriteError renders client errors with their own status and hides
// everything else behind a 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if ae, ok := apperr.As(err); ok {
		writeJSON(w, ae.Status, errorResponse{Detail: ae.Message, Error: ae.Code})
		return
	}
	log.Printf("%s %s [%s]: %v", r.Method, r.URL.Path, chimw.GetReqID(r.Context()), err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal server error", Error: "internal"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.BadRequest("invalid request body: %v", err)
	}
	return nil
}

// principal is only called behind RequireAuth.
func principal(r *http.Request) (models.User, error) {
	u, ok := middleware.Principal(r.Context())
	if !ok {
		return models.User{}, apperr.ErrInvalidToken
	}
	return u, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("invalid %s", name)
	}
	return id, nil
}

// queryID returns nil for a missing or zero parameter.
func queryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperr.BadRequest("invalid %s", name)
	}
	if id == 0 {
		return nil, nil
	}
	return &id, nil
}

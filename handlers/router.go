package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"notenext/middleware"
)

// NewRouter wires every route. auth guards everything except signup (which
// only peeks at the token), login, the unclaimed-children list and the
// liveness probe.
func NewRouter(h *Handler, auth *middleware.Authenticator) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors)

	r.Get("/", h.Root)
	r.With(auth.OptionalAuth).Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Get("/available-children", h.AvailableChildren)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Get("/folders", h.GetFolders)
		r.Post("/folders", h.CreateFolder)
		r.Delete("/folders/{id}", h.DeleteFolder)
		r.Get("/notes", h.GetNotes)
		r.Post("/notes", h.CreateNote)
		r.Put("/notes/{id}", h.UpdateNote)
		r.Delete("/notes/{id}", h.DeleteNote)
		r.Get("/children", h.Children)
	})

	return r
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

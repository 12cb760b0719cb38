package handlers

import (
	"net/http"

	"notenext/apperr"
	"notenext/models"
)

type childSummary struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
}

func summarize(users []models.User) []childSummary {
	out := make([]childSummary, 0, len(users))
	for _, u := range users {
		out = append(out, childSummary{ID: u.ID, Username: u.Username, Email: u.Email})
	}
	return out
}

// Children lists the principal's children. Parents only.
func (h *Handler) Children(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	if p.Role != models.RoleParent {
		WriteError(w, r, apperr.ErrParentsOnly)
		return
	}
	children, err := h.accounts.ChildrenOf(r.Context(), p.ID)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summarize(children))
}

func (h *Handler) AvailableChildren(w http.ResponseWriter, r *http.Request) {
	children, err := h.accounts.ListUnclaimedChildren(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summarize(children))
}

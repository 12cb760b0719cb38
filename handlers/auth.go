package handlers

import (
	"net/http"

	"notenext/accounts"
	"notenext/apperr"
	"notenext/auth"
	"notenext/middleware"
	"notenext/models"
)

// signupRequest mirrors what clients send. parent_id and child_ids are
// accepted for compatibility and ignored: the parent link always comes from
// the authenticated principal.
type signupRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	ParentID *int64  `json:"parent_id"`
	ChildIDs []int64 `json:"child_ids"`
}

type publicUser struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	Email    *string     `json:"email"`
	ParentID *int64      `json:"parent_id"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionUser struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        sessionUser `json:"user"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		WriteError(w, r, apperr.BadRequest("role must be parent or child"))
		return
	}

	var acting *models.User
	if u, ok := middleware.Principal(r.Context()); ok {
		acting = &u
	}
	user, err := h.accounts.Register(r.Context(), accounts.Registration{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	}, acting)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, publicUser{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Email:    user.Email,
		ParentID: user.ParentID,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, err)
		return
	}
	session, err := h.accounts.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: session.Token,
		TokenType:   auth.TokenType,
		User: sessionUser{
			ID:       session.User.ID,
			Username: session.User.Username,
			Role:     session.User.Role,
		},
	})
}

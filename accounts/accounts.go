// Package accounts holds users and the parent/child links between them.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notenext/apperr"
	"notenext/db"
	"notenext/models"
)

// Store is the slice of the persistence layer accounts depend on.
type Store interface {
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	ParentEmailTaken(ctx context.Context, email string) (bool, error)
	ChildrenOf(ctx context.Context, parentID int64) ([]models.User, error)
	UnclaimedChildren(ctx context.Context) ([]models.User, error)
}

type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

type Tokens interface {
	Issue(subject string) (string, error)
	Resolve(token string) (string, error)
}

type Service struct {
	store  Store
	hasher Hasher
	tokens Tokens
}

func NewService(store Store, hasher Hasher, tokens Tokens) *Service {
	return &Service{store: store, hasher: hasher, tokens: tokens}
}

// Registration is a signup request.
type Registration struct {
	Username string
	Email    string
	Password string
	Role     models.Role
}

// Session is the result of a successful login.
type Session struct {
	Token string
	User  models.User
}

// Register creates an account. Children can only be created by an
// authenticated parent and inherit the parent's email; parents need an email
// that no other parent uses.
func (s *Service) Register(ctx context.Context, reg Registration, acting *models.User) (models.User, error) {
	username := strings.TrimSpace(reg.Username)
	if username == "" {
		return models.User{}, apperr.BadRequest("username is required")
	}
	if reg.Password == "" {
		return models.User{}, apperr.BadRequest("password is required")
	}

	taken, err := s.store.UsernameTaken(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return models.User{}, apperr.ErrDuplicateUsername
	}

	user := models.User{Username: username, Role: reg.Role}
	switch reg.Role {
	case models.RoleChild:
		if acting == nil || acting.Role != models.RoleParent {
			return models.User{}, apperr.ErrParentRequiredForChildSignup
		}
		user.Email = acting.Email
		parentID := acting.ID
		user.ParentID = &parentID
	case models.RoleParent:
		email := strings.TrimSpace(reg.Email)
		if email == "" {
			return models.User{}, apperr.ErrMissingEmailForParent
		}
		user.Email = &email
	default:
		return models.User{}, apperr.BadRequest("role must be parent or child")
	}

	if user.Role == models.RoleParent {
		taken, err := s.store.ParentEmailTaken(ctx, *user.Email)
		if err != nil {
			return models.User{}, fmt.Errorf("check parent email: %w", err)
		}
		if taken {
			return models.User{}, apperr.ErrDuplicateParentEmail
		}
	}

	user.PasswordHash, err = s.hasher.Hash(reg.Password)
	if err != nil {
		return models.User{}, err
	}
	created, err := s.store.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return models.User{}, apperr.ErrDuplicateUsername
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Authenticate trims the username the same way Register stores it.
func (s *Service) Authenticate(ctx context.Context, username, password string) (Session, error) {
	user, err := s.store.UserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Session{}, apperr.ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("find user: %w", err)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return Session{}, apperr.ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: user}, nil
}

// ChildrenOf is always computed from parent_id; there is no cached list.
func (s *Service) ChildrenOf(ctx context.Context, parentID int64) ([]models.User, error) {
	return s.store.ChildrenOf(ctx, parentID)
}

func (s *Service) ResolvePrincipal(ctx context.Context, token string) (models.User, error) {
	username, err := s.tokens.Resolve(token)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", apperr.ErrInvalidToken, err)
	}
	user, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.User{}, apperr.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("find principal: %w", err)
	}
	return user, nil
}

func (s *Service) ListUnclaimedChildren(ctx context.Context) ([]models.User, error) {
	return s.store.UnclaimedChildren(ctx)
}

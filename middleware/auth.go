package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"notenext/apperr"
	"notenext/models"
)

type contextKey struct{}

var principalKey contextKey

// PrincipalResolver turns a bearer token into the acting user.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, token string) (models.User, error)
}

// ErrorWriter renders a failure. Handlers and middleware share one so the
// error body is the same everywhere.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

type Authenticator struct {
	resolver PrincipalResolver
	writeErr ErrorWriter
}

func NewAuthenticator(resolver PrincipalResolver, writeErr ErrorWriter) *Authenticator {
	return &Authenticator{resolver: resolver, writeErr: writeErr}
}

// RequireAuth rejects requests without a valid bearer token.
func (a *Authenticator) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			a.writeErr(w, r, apperr.ErrInvalidToken)
			return
		}
		user, err := a.resolver.ResolvePrincipal(r.Context(), token)
		if err != nil {
			log.Printf("Auth Middleware - rejecting token: %v", err)
			a.writeErr(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), user)))
	})
}

// OptionalAuth attaches the principal when a valid token is present and
// otherwise lets the request through anonymously.
func (a *Authenticator) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, ok := bearerToken(r); ok {
			user, err := a.resolver.ResolvePrincipal(r.Context(), token)
			if err == nil {
				r = r.WithContext(WithPrincipal(r.Context(), user))
			} else {
				log.Printf("Auth Middleware - ignoring token: %v", err)
			}
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func WithPrincipal(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, principalKey, u)
}

// Principal returns the authenticated user, if any.
func Principal(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(principalKey).(models.User)
	return u, ok
}

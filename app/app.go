// Package app assembles the services around one store handle.
package app

import (
	"net/http"

	"notenext/access"
	"notenext/accounts"
	"notenext/auth"
	"notenext/config"
	"notenext/db"
	"notenext/handlers"
	"notenext/middleware"
)

type App struct {
	Store    *db.Store
	Tokens   *auth.TokenIssuer
	Hasher   *auth.BcryptHasher
	Accounts *accounts.Service
	Access   *access.Engine
}

func New(store *db.Store, cfg config.Config) *App {
	tokens := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	accts := accounts.NewService(store, hasher, tokens)
	return &App{
		Store:    store,
		Tokens:   tokens,
		Hasher:   hasher,
		Accounts: accts,
		Access:   access.NewEngine(accts, store),
	}
}

func (a *App) Router() http.Handler {
	h := handlers.New(a.Accounts, a.Access)
	return handlers.NewRouter(h, middleware.NewAuthenticator(a.Accounts, handlers.WriteError))
}

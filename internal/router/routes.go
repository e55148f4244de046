package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/AlenaMolokova/checks/internal/auth"
	"github.com/AlenaMolokova/checks/internal/handlers"
	"github.com/AlenaMolokova/checks/internal/middleware"
	"github.com/AlenaMolokova/checks/internal/storage"
	"github.com/AlenaMolokova/checks/internal/usecase"
)

const (
	AuthPrefix      = "/api/auth"
	ChecksPrefix    = "/api/checks"
	RegisterPath    = "/register"
	LoginPath       = "/login"
	RefreshPath     = "/refresh-token"
	UsersListPath   = "/list"
	MyChecksPath    = "/my-checks"
	PublicCheckPath = "/checks/{token}/show-public"
)

func SetupRoutes(store *storage.Storage, tokens *auth.TokenHandler, baseURL string) *chi.Mux {
	r := chi.NewRouter()

	connector := auth.NewConnector(store, tokens)
	checkUC := usecase.NewCheckUseCase(store, baseURL)

	r.Post(AuthPrefix+RegisterPath, handlers.NewRegisterHandler(connector).ServeHTTP)
	r.Post(AuthPrefix+LoginPath, handlers.NewLoginHandler(connector).ServeHTTP)
	r.Post(AuthPrefix+RefreshPath, handlers.NewRefreshHandler(connector).ServeHTTP)
	r.Get(AuthPrefix+UsersListPath, handlers.NewUsersListHandler(store).ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, store))
		r.Post(ChecksPrefix, handlers.NewCheckCreateHandler(checkUC).ServeHTTP)
		r.Get(ChecksPrefix+MyChecksPath, handlers.NewChecksListHandler(checkUC).ServeHTTP)
		r.Get(ChecksPrefix+"/{id}", handlers.NewCheckGetHandler(checkUC).ServeHTTP)
	})

	r.Get(PublicCheckPath, handlers.NewCheckPublicHandler(checkUC).ServeHTTP)

	return r
}

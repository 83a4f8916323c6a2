package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/oracular-labs/oracular/internal/api/service"
)

// Handlers ... Server handler interface
type Handlers interface {
	HealthCheck(w http.ResponseWriter, r *http.Request)
	ServeHTTP(w http.ResponseWriter, r *http.Request)
}

// OracularHandler ... Server handler logic
type OracularHandler struct {
	ctx     context.Context
	service service.Service
	router  *chi.Mux
}

// New ... Initializer
func New(ctx context.Context, svc service.Service) (Handlers, error) {
	handlers := &OracularHandler{ctx: ctx, service: svc}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/health", handlers.HealthCheck)

	router.Route("/v0", func(r chi.Router) {
		r.Post("/oracle", handlers.CreateOracle)
		r.Patch("/oracle", handlers.UpdateOracleMetadata)
		r.Delete("/oracle", handlers.DeleteOracle)
		r.Get("/oracle", handlers.GetOracleMetadata)
		r.Get("/oracles", handlers.GetOracles)

		r.Get("/owner", handlers.GetOwner)
		r.Put("/owner", handlers.SetOwner)

		r.Post("/feed", handlers.CreateFeed)
		r.Get("/feeds", handlers.ListFeeds)
	})

	handlers.router = router

	return handlers, nil
}

// ServeHTTP ... Serves a http request given a response builder and request
func (oh *OracularHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	oh.router.ServeHTTP(w, r)
}

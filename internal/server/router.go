// Package server собирает HTTP API dev-бэкенда.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/iudanet/articlekeeper/internal/server/handlers"
	"github.com/iudanet/articlekeeper/internal/server/middleware"
	"github.com/iudanet/articlekeeper/internal/server/storage"
	"github.com/iudanet/articlekeeper/internal/validation"
)

// APIPrefix префикс всех маршрутов API
const APIPrefix = "/api/v1"

// Store хранилище, которое нужно роутеру
type Store interface {
	storage.ArticleStorage
	handlers.Pinger
}

// Options параметры роутера
type Options struct {
	Limiter        *middleware.RateLimiter // nil = без ограничения
	Version        string
	AllowedOrigins []string
}

// NewRouter создает chi роутер с ресурсами drafts, posts, tags
func NewRouter(logger *slog.Logger, store Store, opts Options) http.Handler {
	v := validation.New()
	health := handlers.NewHealthHandler(logger, store, opts.Version)
	drafts := handlers.NewDraftsHandler(logger, store, v)
	posts := handlers.NewPostsHandler(logger, store)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger, APIPrefix+"/health"))
	r.Use(middleware.Recovery(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         int((5 * time.Minute).Seconds()),
	}))

	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/health", health.Health)

		r.Group(func(r chi.Router) {
			if opts.Limiter != nil {
				r.Use(opts.Limiter.Limit)
			}

			r.Route("/drafts", func(r chi.Router) {
				r.Get("/", drafts.List)
				r.Post("/", drafts.Create)
				r.Get("/{id}", drafts.Get)
				r.Patch("/{id}", drafts.Update)
				r.Delete("/{id}", drafts.Delete)
				r.Post("/{id}/publish", drafts.Publish)
			})

			r.Route("/posts", func(r chi.Router) {
				r.Get("/", posts.List)
				r.Get("/{id}", posts.Get)
				r.Post("/{id}/unpublish", posts.Unpublish)
			})

			r.Get("/tags", posts.Tags)
		})
	})

	return r
}

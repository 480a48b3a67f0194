package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/filestate/backend/internal/setup"
	mw "github.com/itchan-dev/filestate/shared/middleware"
	"github.com/itchan-dev/filestate/shared/middleware/metrics"
)

// New creates the chi router with all routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	// Subscribers may read the state from a browser
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.JSONHeaders(deps.Config.Public.SecureHeaders))

		r.Get("/state", h.GetState)
		r.Get("/files/{fileId}", h.GetFile)
		r.Get("/posts/{postId}/files", h.GetPostFiles)
		r.Get("/public_link", h.GetPublicLink)

		// Event producers only
		r.With(deps.AuthMiddleware.NeedProducer()).Post("/events", h.PostEvent)
	})

	return r
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/communica-av/quoter-backend/api/controllers"
	"github.com/communica-av/quoter-backend/api/middleware"
	"github.com/communica-av/quoter-backend/internal/catalog"
	"github.com/communica-av/quoter-backend/internal/quotes"
	"github.com/communica-av/quoter-backend/internal/session"
	"github.com/communica-av/quoter-backend/pkg/config"
	"github.com/communica-av/quoter-backend/pkg/db"
	"github.com/communica-av/quoter-backend/pkg/logger"
	"github.com/communica-av/quoter-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	catalogService catalog.Service,
	quoteService quotes.Service,
	sessionService session.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", controllers.CatalogList(catalogService, logg))
		r.Get("/quotes/{quoteId}", controllers.QuoteGet(quoteService, logg))

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", controllers.SessionCreate(sessionService, logg))
			r.Route("/{sessionId}", func(r chi.Router) {
				r.Get("/", controllers.SessionGet(sessionService, logg))
				r.Delete("/", controllers.SessionDelete(sessionService, logg))
				r.Put("/event", controllers.SessionUpdateEvent(sessionService, logg))
				r.Put("/area", controllers.SessionUpdateArea(sessionService, logg))
				r.Post("/items", controllers.SessionAddItem(sessionService, logg))
				r.Post("/items/{itemKey}/increment", controllers.SessionIncrementItem(sessionService, logg))
				r.Post("/items/{itemKey}/decrement", controllers.SessionDecrementItem(sessionService, logg))
				r.Post("/advance", controllers.SessionAdvance(sessionService, logg))
				r.Post("/back", controllers.SessionBack(sessionService, logg))
				r.Post("/submit", controllers.SessionSubmit(sessionService, logg))
			})
		})
	})

	return r
}

package handler

import (
	"go-cms-app/internal/logger"
	"go-cms-app/internal/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Handlers bundles the route handlers mounted by NewRouter.
type Handlers struct {
	Category *CategoryHandler
	Page     *PageHandler
	Item     *ItemHandler
	Admin    *AdminHandler
	Health   *HealthHandler
	Seo      *SeoHandler
}

// notFound answers every unmatched path or method.
func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("Not Found"))
}

// NewRouter creates and configures a new chi router.
func NewRouter(h Handlers, log logger.Logger, authzMiddleware func(http.Handler) http.Handler, errorMiddleware func(middleware.AppHandler) http.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(middleware.CORS)

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Get("/healthz", h.Health.healthzHandler)
	r.Get("/readyz", h.Health.readyzHandler)
	r.Get("/robots.txt", h.Seo.robotsHandler)
	r.Get("/sitemap.xml", h.Seo.sitemapHandler)

	r.Group(func(r chi.Router) {
		r.Use(authzMiddleware)

		r.Method(http.MethodGet, "/api/categories", errorMiddleware(h.Category.listHandler))
		r.Method(http.MethodPost, "/api/categories", errorMiddleware(h.Category.createHandler))
		r.Method(http.MethodPut, "/api/categories/{id:[0-9]+}", errorMiddleware(h.Category.updateHandler))
		r.Method(http.MethodDelete, "/api/categories/{id:[0-9]+}", errorMiddleware(h.Category.deleteHandler))
		r.Method(http.MethodGet, "/api/categories/{id:[0-9]+}/pages", errorMiddleware(h.Category.pagesHandler))

		r.Method(http.MethodGet, "/api/pages", errorMiddleware(h.Page.listHandler))
		r.Method(http.MethodPost, "/api/pages", errorMiddleware(h.Page.createHandler))
		r.Method(http.MethodGet, "/api/pages/{id:[0-9]+}", errorMiddleware(h.Page.viewHandler))
		r.Method(http.MethodPut, "/api/pages/{id:[0-9]+}", errorMiddleware(h.Page.updateHandler))
		r.Method(http.MethodDelete, "/api/pages/{id:[0-9]+}", errorMiddleware(h.Page.deleteHandler))

		r.Method(http.MethodGet, "/api/items", errorMiddleware(h.Item.listHandler))
		r.Method(http.MethodPost, "/api/items", errorMiddleware(h.Item.createHandler))
		r.Method(http.MethodGet, "/api/items/{id:[0-9]+}", errorMiddleware(h.Item.viewHandler))
		r.Method(http.MethodPut, "/api/items/{id:[0-9]+}", errorMiddleware(h.Item.updateHandler))
		r.Method(http.MethodDelete, "/api/items/{id:[0-9]+}", errorMiddleware(h.Item.deleteHandler))

		r.Method(http.MethodPost, "/api/init-db", errorMiddleware(h.Admin.initDBHandler))
	})

	return r
}

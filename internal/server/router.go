package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/worldradio/newsroom-go/internal/handler"
	"github.com/worldradio/newsroom-go/internal/middleware"
	"github.com/worldradio/newsroom-go/internal/service"
)

// RequestTimeout bounds every request, including storage and upstream calls.
const RequestTimeout = 30 * time.Second

// Deps holds everything the router serves. Auth and Favorites may be nil when
// no database is available, in which case their routes are not mounted.
type Deps struct {
	Auth          *service.AuthService
	Favorites     *service.FavoriteService
	News          *service.NewsService
	Tokens        middleware.TokenVerifier
	KeyConfigured bool
	CORSOrigins   []string
}

// NewRouter assembles the HTTP surface.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(d.CORSOrigins))
	r.Use(chimw.Timeout(RequestTimeout))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Handle("/metrics", promhttp.Handler())

	healthHandler := handler.NewHealthHandler(d.KeyConfigured)
	r.Get("/api/health", healthHandler.HandleHealth)

	if d.News != nil {
		newsHandler := handler.NewNewsHandler(d.News)
		r.Get("/api/news", newsHandler.HandleGetNews)
	}

	if d.Auth != nil {
		authHandler := handler.NewAuthHandler(d.Auth)
		r.Post("/api/auth/register", authHandler.HandleRegister)
		r.Post("/api/auth/login", authHandler.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(d.Tokens))
			r.Get("/api/auth/me", authHandler.HandleMe)
		})
	}

	if d.Favorites != nil {
		favHandler := handler.NewFavoriteHandler(d.Favorites)
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(d.Tokens))
			r.Get("/api/favorites", favHandler.HandleList)
			r.Post("/api/favorites", favHandler.HandleAdd)
			r.Delete("/api/favorites/{id}", favHandler.HandleDelete)
		})
	}

	return r
}

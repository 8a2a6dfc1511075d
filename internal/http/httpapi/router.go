// Package httpapi assembles the chi router for the service.
package httpapi

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"nirnayai/internal/http/handlers"
	"nirnayai/internal/infra"
	"nirnayai/internal/middleware"
)

// NewRouter wires middleware, the API routes and the static frontend.
func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		middleware.UserID,
	)

	r.Get("/health", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/meta/categories", app.Categories)
		r.Get("/entitlements", app.Entitlements)
		r.Post("/clarify", app.Clarify)
		r.Post("/simulate", app.Simulate)
		r.Post("/reports/premium", app.PremiumReport)
		r.Post("/insights/followup", app.FollowUpInsight)
		r.Get("/simulations", app.Simulations)
	})

	// Static frontend with index fallback for client-side routes.
	if cfg.PublicDir != "" {
		r.NotFound(staticHandler(cfg.PublicDir))
	}

	return r
}

func staticHandler(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		requested := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}

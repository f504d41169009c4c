package httpapi

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/amrutap2004/RankRaise/internal/http/handlers"
	"github.com/amrutap2004/RankRaise/internal/infra"
	mw "github.com/amrutap2004/RankRaise/internal/middleware"
)

func NewRouter(app *handlers.App, logger zerolog.Logger, cfg *infra.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		mw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		mw.Logger(logger),
		mw.CORS(cfg.AllowedOrigins),
		mw.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.Health)
		r.Post("/register", app.Register)
		r.Post("/login", app.Login)
		r.Get("/dashboard/{email}", app.Dashboard)
		r.Get("/leaderboard", app.Leaderboard)
		r.Put("/donations/{email}", app.DonationsUpdate)
	})

	// Production deployments can serve the built frontend from the same
	// process; unknown paths fall back to index.html for SPA routing.
	if cfg.StaticDir != "" {
		serveStatic(r, cfg.StaticDir)
	}

	return r
}

func serveStatic(r chi.Router, dir string) {
	fileServer := http.FileServer(http.Dir(dir))
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		path := filepath.Join(dir, filepath.Clean(req.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, req)
			return
		}
		http.ServeFile(w, req, filepath.Join(dir, "index.html"))
	})
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/amrutap2004/RankRaise/internal/adapter/repo"
)

// newTestApp wires the handlers to a fresh fallback store, which is also the
// store the process runs on when no database is reachable.
func newTestApp() *App {
	return NewApp(repo.NewMemoryStore(), zerolog.Nop(), "memory")
}

func newTestRouter(app *App) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/register", app.Register)
	r.Post("/api/login", app.Login)
	r.Get("/api/dashboard/{email}", app.Dashboard)
	r.Get("/api/leaderboard", app.Leaderboard)
	r.Put("/api/donations/{email}", app.DonationsUpdate)
	return r
}

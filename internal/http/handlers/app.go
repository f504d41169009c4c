package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/amrutap2004/RankRaise/internal/domain"
)

// App bundles the dependencies every handler needs. The store is selected
// once at startup (Postgres or the in-memory fallback) and never swapped.
type App struct {
	Store       domain.Store
	Logger      zerolog.Logger
	StorageMode string
}

// NewApp builds the handler container.
func NewApp(store domain.Store, logger zerolog.Logger, storageMode string) *App {
	return &App{Store: store, Logger: logger, StorageMode: storageMode}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// fail writes the uniform failure shape the frontend string-matches on.
func (a *App) fail(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]any{"success": false, "message": message})
}

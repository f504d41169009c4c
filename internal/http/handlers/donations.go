package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amrutap2004/RankRaise/internal/domain"
)

type donationRequest struct {
	Amount int64 `json:"amount"`
}

// DonationsUpdate applies a donation to the user's cumulative total and
// returns the new total. The store propagates the new total to the
// leaderboard projection in the same operation.
func (a *App) DonationsUpdate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Amount <= 0 {
		a.fail(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	email := chi.URLParam(r, "email")
	newTotal, err := a.Store.AddDonation(r.Context(), email, req.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.fail(w, http.StatusNotFound, "User not found")
			return
		}
		a.Logger.Error().Err(err).Msg("donation update failed")
		a.fail(w, http.StatusBadRequest, "donation update failed")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success":        true,
		"totalDonations": newTotal,
	})
}

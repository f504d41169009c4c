package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amrutap2004/RankRaise/internal/domain"
)

type dashboardDTO struct {
	Name           string   `json:"name"`
	ReferralCode   string   `json:"referralCode"`
	TotalDonations int64    `json:"totalDonations"`
	Rewards        []string `json:"rewards"`
	GoalProgress   float64  `json:"goalProgress"`
}

func (a *App) Dashboard(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := a.Store.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.fail(w, http.StatusNotFound, "User not found")
			return
		}
		a.Logger.Error().Err(err).Msg("dashboard lookup failed")
		a.fail(w, http.StatusBadRequest, "dashboard lookup failed")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"data": dashboardDTO{
			Name:           user.Name,
			ReferralCode:   user.ReferralCode,
			TotalDonations: user.TotalDonations,
			Rewards:        domain.RewardsFor(user.TotalDonations),
			GoalProgress:   domain.GoalProgress(user.TotalDonations),
		},
	})
}

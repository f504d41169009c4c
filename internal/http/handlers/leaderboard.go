package handlers

import "net/http"

const leaderboardLimit = 10

type leaderboardEntryDTO struct {
	Name           string `json:"name"`
	ReferralCode   string `json:"referralCode"`
	TotalDonations int64  `json:"totalDonations"`
	Rank           int    `json:"rank"`
}

func (a *App) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := a.Store.TopDonors(r.Context(), leaderboardLimit)
	if err != nil {
		a.Logger.Error().Err(err).Msg("leaderboard listing failed")
		a.fail(w, http.StatusBadRequest, "leaderboard listing failed")
		return
	}

	items := make([]leaderboardEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, leaderboardEntryDTO{
			Name:           entry.Name,
			ReferralCode:   entry.ReferralCode,
			TotalDonations: entry.TotalDonations,
			Rank:           entry.Rank,
		})
	}

	a.json(w, http.StatusOK, map[string]any{
		"success":     true,
		"leaderboard": items,
	})
}

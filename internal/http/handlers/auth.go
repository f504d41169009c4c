package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/amrutap2004/RankRaise/internal/domain"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userDTO struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	ReferralCode   string   `json:"referralCode"`
	TotalDonations int64    `json:"totalDonations"`
	Rewards        []string `json:"rewards,omitempty"`
}

func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		a.fail(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	user, err := a.Store.CreateUser(r.Context(), domain.NewUser(req.Name, req.Email, req.Password))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			a.fail(w, http.StatusBadRequest, "Email already registered")
			return
		}
		a.Logger.Error().Err(err).Msg("register failed")
		a.fail(w, http.StatusBadRequest, "registration failed")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"user": userDTO{
			Name:           user.Name,
			Email:          user.Email,
			ReferralCode:   user.ReferralCode,
			TotalDonations: user.TotalDonations,
		},
	})
}

func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid payload")
		return
	}

	user, err := a.Store.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			a.fail(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		a.Logger.Error().Err(err).Msg("login failed")
		a.fail(w, http.StatusBadRequest, "login failed")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"user": userDTO{
			Name:           user.Name,
			Email:          user.Email,
			ReferralCode:   user.ReferralCode,
			TotalDonations: user.TotalDonations,
			Rewards:        domain.RewardsFor(user.TotalDonations),
		},
	})
}

package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

type leaderboardResponse struct {
	Success     bool `json:"success"`
	Leaderboard []struct {
		Name           string `json:"name"`
		ReferralCode   string `json:"referralCode"`
		TotalDonations int64  `json:"totalDonations"`
		Rank           int    `json:"rank"`
	} `json:"leaderboard"`
}

func TestLeaderboardSortedTopTen(t *testing.T) {
	router := newTestRouter(newTestApp())

	req := httptest.NewRequest("GET", "/api/leaderboard", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp leaderboardResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Leaderboard) != 10 {
		t.Fatalf("got %d entries, want 10", len(resp.Leaderboard))
	}
	for i := 1; i < len(resp.Leaderboard); i++ {
		if resp.Leaderboard[i-1].TotalDonations < resp.Leaderboard[i].TotalDonations {
			t.Fatalf("not sorted descending at index %d", i)
		}
	}
	for i, entry := range resp.Leaderboard {
		if entry.Rank != i+1 {
			t.Fatalf("rank at index %d = %d, want %d", i, entry.Rank, i+1)
		}
	}
}

func TestLeaderboardCapsAtTenAfterRegistrations(t *testing.T) {
	app := newTestApp()
	router := newTestRouter(app)

	// Registering adds a projection entry; the listing must still cap at 10
	// and stay ordered.
	for _, body := range []string{
		`{"name":"Ada","email":"ada@x.com","password":"secret1"}`,
		`{"name":"Grace","email":"grace@x.com","password":"secret2"}`,
	} {
		req := httptest.NewRequest("POST", "/api/register", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != 200 {
			t.Fatalf("register status = %d, want 200", rr.Code)
		}
	}

	req := httptest.NewRequest("GET", "/api/leaderboard", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var resp leaderboardResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Leaderboard) != 10 {
		t.Fatalf("got %d entries, want 10", len(resp.Leaderboard))
	}
	for i := 1; i < len(resp.Leaderboard); i++ {
		if resp.Leaderboard[i-1].TotalDonations < resp.Leaderboard[i].TotalDonations {
			t.Fatalf("not sorted descending at index %d", i)
		}
	}
}

func TestLeaderboardReflectsDonations(t *testing.T) {
	router := newTestRouter(newTestApp())

	body := `{"name":"Ada","email":"ada@x.com","password":"secret1"}`
	req := httptest.NewRequest("POST", "/api/register", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("register status = %d, want 200", rr.Code)
	}
	var registered struct {
		User struct {
			TotalDonations int64 `json:"totalDonations"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&registered); err != nil {
		t.Fatalf("decode register response: %v", err)
	}

	// Push the new account past the current leader.
	req = httptest.NewRequest("PUT", "/api/donations/ada@x.com", strings.NewReader(`{"amount":20000}`))
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("donation status = %d, want 200", rr.Code)
	}

	req = httptest.NewRequest("GET", "/api/leaderboard", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var resp leaderboardResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Leaderboard[0].ReferralCode != "ada2025" {
		t.Fatalf("top entry = %q, want ada2025", resp.Leaderboard[0].ReferralCode)
	}
	want := registered.User.TotalDonations + 20000
	if resp.Leaderboard[0].TotalDonations != want {
		t.Fatalf("top total = %d, want %d", resp.Leaderboard[0].TotalDonations, want)
	}
}

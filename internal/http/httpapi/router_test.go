package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"nirnayai/internal/adapter/repo"
	"nirnayai/internal/entitlement"
	"nirnayai/internal/http/handlers"
	"nirnayai/internal/infra"
)

func newTestServer(t *testing.T, proUserIDs ...string) *httptest.Server {
	t.Helper()

	cfg := &infra.Config{
		DBPath:          filepath.Join(t.TempDir(), "router-test.sqlite"),
		PublicDir:       "", // no static frontend in tests
		RateLimitPerMin: 1000,
	}
	db, err := infra.OpenDB(cfg)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	app := handlers.NewApp(
		repo.NewSimulationRepository(db),
		entitlement.StaticResolver(proUserIDs...),
		zerolog.Nop(),
	)
	srv := httptest.NewServer(NewRouter(app, cfg, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func postSimulate(t *testing.T, srv *httptest.Server, userID string) *http.Response {
	t.Helper()
	body := strings.NewReader(`{"decision":"Should I relocate to Bengaluru for the new product role?","category":"relocation"}`)
	req, err := http.NewRequest("POST", srv.URL+"/api/simulate", body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-user-id", userID)
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("simulate request: %v", err)
	}
	return resp
}

func TestFreeUserHitsDailyLimitEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	for i := 0; i < entitlement.FreeDailySimulationLimit; i++ {
		resp := postSimulate(t, srv, "guest")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("simulation %d: got status %d, want 200", i+1, resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp := postSimulate(t, srv, "guest")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("over-limit simulation: got status %d, want 403", resp.StatusCode)
	}

	var payload struct {
		Code         string `json:"code"`
		Entitlements struct {
			Usage struct {
				UsedToday      int  `json:"usedToday"`
				RemainingToday *int `json:"remainingToday"`
			} `json:"usage"`
		} `json:"entitlements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode denial: %v", err)
	}
	if payload.Code != entitlement.ReasonFreeLimitReached {
		t.Fatalf("unexpected reason code: %q", payload.Code)
	}
	if payload.Entitlements.Usage.UsedToday != entitlement.FreeDailySimulationLimit {
		t.Fatalf("denied call must not have recorded a simulation: usedToday=%d", payload.Entitlements.Usage.UsedToday)
	}
	if payload.Entitlements.Usage.RemainingToday == nil || *payload.Entitlements.Usage.RemainingToday != 0 {
		t.Fatalf("remainingToday mismatch: %#v", payload.Entitlements.Usage.RemainingToday)
	}
}

func TestProUserUnlimitedEndToEnd(t *testing.T) {
	srv := newTestServer(t, "pro-user")

	for i := 0; i < entitlement.FreeDailySimulationLimit+2; i++ {
		resp := postSimulate(t, srv, "pro-user")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("pro simulation %d: got status %d, want 200", i+1, resp.StatusCode)
		}
		resp.Body.Close()
	}

	req, _ := http.NewRequest("POST", srv.URL+"/api/reports/premium", strings.NewReader(`{"decision":"the same decision"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-user-id", "pro-user")
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("premium report request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("premium report: got status %d, want 200", resp.StatusCode)
	}
}

func TestHealthAndCategoriesRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health: got status %d", resp.StatusCode)
	}

	resp2, err := srv.Client().Get(srv.URL + "/api/meta/categories")
	if err != nil {
		t.Fatalf("categories request: %v", err)
	}
	defer resp2.Body.Close()
	var payload struct {
		Categories []string `json:"categories"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&payload); err != nil {
		t.Fatalf("decode categories: %v", err)
	}
	if len(payload.Categories) == 0 {
		t.Fatal("expected categories")
	}
}

func TestSimulationRoundTripAppearsInListing(t *testing.T) {
	srv := newTestServer(t)

	resp := postSimulate(t, srv, "alice")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("simulate: got status %d", resp.StatusCode)
	}
	var simPayload struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&simPayload); err != nil {
		t.Fatalf("decode simulate: %v", err)
	}
	resp.Body.Close()

	listResp, err := srv.Client().Get(fmt.Sprintf("%s/api/simulations?userId=alice", srv.URL))
	if err != nil {
		t.Fatalf("list request: %v", err)
	}
	defer listResp.Body.Close()
	var listPayload struct {
		Simulations []struct {
			ID     string `json:"id"`
			UserID string `json:"userId"`
		} `json:"simulations"`
	}
	if err := json.NewDecoder(listResp.Body).Decode(&listPayload); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(listPayload.Simulations) != 1 || listPayload.Simulations[0].ID != simPayload.ID {
		t.Fatalf("listing mismatch: %#v", listPayload.Simulations)
	}
}

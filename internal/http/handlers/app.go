// Package handlers implements the HTTP surface of the decision-scenario
// service. Handlers are thin: validation and JSON mapping here, all policy
// and content rules in the entitlement and scenario packages.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"nirnayai/internal/domain"
	"nirnayai/internal/entitlement"
	"nirnayai/internal/middleware"
)

// App is the handler container holding the injected collaborators.
type App struct {
	Repo   domain.SimulationRepository
	Plans  entitlement.PlanResolver
	Logger zerolog.Logger
}

// NewApp wires the handler container.
func NewApp(repo domain.SimulationRepository, plans entitlement.PlanResolver, logger zerolog.Logger) *App {
	return &App{Repo: repo, Plans: plans, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{"error": message, "code": code})
}

// denied renders an access-policy rejection together with the snapshot that
// produced it, so clients can show an upgrade prompt without a second call.
func (a *App) denied(w http.ResponseWriter, d *entitlement.Denial, snap domain.UsageSnapshot) {
	a.json(w, http.StatusForbidden, map[string]any{
		"error":        d.Message,
		"code":         d.Reason,
		"entitlements": snap,
	})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

func (a *App) snapshot(ctx context.Context, userID string) (domain.UsageSnapshot, error) {
	return entitlement.Snapshot(ctx, userID, a.Plans, a.Repo.CountForUserToday)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"nirnayai/internal/domain"
	"nirnayai/internal/entitlement"
	"nirnayai/internal/scenario"
)

// Simulate runs one gated simulation: snapshot, policy gate, synthesis,
// append, fresh snapshot.
//
// Metering is best-effort: the gate reads a count taken before the append,
// so two concurrent calls for the same user can both pass just under the
// limit and briefly overshoot it.
func (a *App) Simulate(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)

	var req domain.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := req.Validate(); err != nil {
		if errors.Is(err, domain.ErrDecisionTooShort) {
			a.error(w, http.StatusBadRequest, "bad_request", "Decision context must be at least 20 characters.")
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	req.Normalize()

	ctx := r.Context()
	snap, err := a.snapshot(ctx, userID)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("load entitlements failed")
		a.error(w, http.StatusInternalServerError, "internal", "Failed to load entitlements")
		return
	}
	if d := entitlement.CanRunSimulation(snap); d != nil {
		a.denied(w, d, snap)
		return
	}

	cards := scenario.GenerateScenarioCards(req)
	sim := &domain.Simulation{
		UserID:        userID,
		Decision:      req.Decision,
		Category:      req.Category,
		Horizon:       req.Horizon,
		RiskTolerance: req.RiskTolerance,
		Answers:       req.Answers,
		Scenarios:     cards,
	}
	if err := a.Repo.Save(ctx, sim); err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("save simulation failed")
		a.error(w, http.StatusInternalServerError, "internal", "Failed to save simulation")
		return
	}

	updated, err := a.snapshot(ctx, userID)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("reload entitlements failed")
		a.error(w, http.StatusInternalServerError, "internal", "Failed to load entitlements")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"id":           sim.ID,
		"scenarios":    cards,
		"entitlements": updated,
	})
}

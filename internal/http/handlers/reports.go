package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"nirnayai/internal/entitlement"
	"nirnayai/internal/scenario"
)

type premiumReportRequest struct {
	Decision string `json:"decision"`
}

// PremiumReport generates the pro-tier report. An empty body is legal and
// falls back to the placeholder summary; the gate is the premium flag, not
// the daily simulation cap, and nothing is persisted.
func (a *App) PremiumReport(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)

	var req premiumReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	snap, err := a.snapshot(r.Context(), userID)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("load entitlements failed")
		a.error(w, http.StatusInternalServerError, "internal", "Failed to generate premium report")
		return
	}
	if d := entitlement.CanGeneratePremiumReport(snap); d != nil {
		a.denied(w, d, snap)
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"report":       scenario.BuildPremiumReport(req.Decision),
		"entitlements": snap,
	})
}

package handlers

import "net/http"

// Entitlements returns the caller's current usage snapshot. Clients treat
// this endpoint as best-effort display data and degrade rendering rather
// than fail the page on a 500.
func (a *App) Entitlements(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)

	snap, err := a.snapshot(r.Context(), userID)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("load entitlements failed")
		a.error(w, http.StatusInternalServerError, "internal", "Failed to load entitlements")
		return
	}
	a.json(w, http.StatusOK, snap)
}

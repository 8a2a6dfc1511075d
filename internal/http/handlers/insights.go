package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"nirnayai/internal/scenario"
)

type followUpRequest struct {
	Question string `json:"question"`
}

// FollowUpInsight classifies a free-text refinement question into an
// insight block. Stateless: insights accumulate on the client for the
// session, so the server returns the block and keeps nothing.
func (a *App) FollowUpInsight(w http.ResponseWriter, r *http.Request) {
	var req followUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "question required")
		return
	}

	insight := scenario.BuildFollowUpInsight(question)
	insight.Points = append(insight.Points, fmt.Sprintf("Follow-up considered: %s.", question))

	a.json(w, http.StatusOK, map[string]any{"insight": insight})
}

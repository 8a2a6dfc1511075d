package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"nirnayai/internal/domain"
	"nirnayai/internal/scenario"
)

type clarifyRequest struct {
	Decision string `json:"decision"`
	Category string `json:"category"`
}

// Clarify returns the ordered clarifying prompts for a decision context.
func (a *App) Clarify(w http.ResponseWriter, r *http.Request) {
	var req clarifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if len(strings.TrimSpace(req.Decision)) < domain.MinDecisionLength {
		a.error(w, http.StatusBadRequest, "bad_request", "Decision context must be at least 20 characters.")
		return
	}

	category := req.Category
	if strings.TrimSpace(category) == "" {
		category = domain.DefaultCategory
	}

	a.json(w, http.StatusOK, map[string]any{
		"prompts": scenario.ClarifyingQuestions(category, req.Decision),
	})
}

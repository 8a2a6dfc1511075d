package handlers

import (
	"net/http"

	"nirnayai/internal/scenario"
)

func (a *App) Categories(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"categories": scenario.Categories()})
}

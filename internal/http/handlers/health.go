package handlers

import (
	"net/http"
	"time"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"ok":        true,
		"service":   "nirnayai",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

package handlers

import (
	"net/http"
	"time"

	"nirnayai/internal/domain"
)

const simulationListLimit = 20

type simulationDTO struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Decision      string    `json:"decision"`
	Category      string    `json:"category"`
	Horizon       string    `json:"horizon"`
	RiskTolerance string    `json:"riskTolerance"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Simulations lists the caller's recent simulations, newest first.
func (a *App) Simulations(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)

	sims, err := a.Repo.ListRecent(r.Context(), userID, simulationListLimit)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("list simulations failed")
		a.error(w, http.StatusInternalServerError, "internal", "Failed to load simulations")
		return
	}

	items := make([]simulationDTO, 0, len(sims))
	for _, sim := range sims {
		items = append(items, toSimulationDTO(sim))
	}
	a.json(w, http.StatusOK, map[string]any{"simulations": items})
}

func toSimulationDTO(sim domain.Simulation) simulationDTO {
	return simulationDTO{
		ID:            sim.ID,
		UserID:        sim.UserID,
		Decision:      sim.Decision,
		Category:      sim.Category,
		Horizon:       sim.Horizon,
		RiskTolerance: sim.RiskTolerance,
		CreatedAt:     sim.CreatedAt,
	}
}

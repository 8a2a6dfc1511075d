// Package repo contains the SQLite-backed implementation of the domain
// repository contracts.
package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nirnayai/internal/domain"
	"nirnayai/internal/sqlinline"
)

// SimulationRepositorySQLite implements domain.SimulationRepository backed
// by SQLite. Records are append-only; there is deliberately no update or
// delete method.
type SimulationRepositorySQLite struct {
	db *sql.DB
}

// NewSimulationRepository creates a new SimulationRepositorySQLite.
func NewSimulationRepository(db *sql.DB) *SimulationRepositorySQLite {
	return &SimulationRepositorySQLite{db: db}
}

// Save appends one simulation record. Assigns a fresh id when the caller
// left it empty. Answers and scenarios are stored as JSON verbatim.
func (r *SimulationRepositorySQLite) Save(ctx context.Context, sim *domain.Simulation) error {
	if sim.ID == "" {
		sim.ID = uuid.NewString()
	}
	if sim.Answers == nil {
		sim.Answers = []domain.Answer{}
	}

	answersJSON, err := json.Marshal(sim.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	scenariosJSON, err := json.Marshal(sim.Scenarios)
	if err != nil {
		return fmt.Errorf("marshal scenarios: %w", err)
	}

	_, err = r.db.ExecContext(ctx, sqlinline.QInsertSimulation,
		sim.ID,
		sim.UserID,
		sim.Decision,
		sim.Category,
		sim.Horizon,
		sim.RiskTolerance,
		string(answersJSON),
		string(scenariosJSON),
	)
	if err != nil {
		return fmt.Errorf("insert simulation: %w", err)
	}
	return nil
}

// CountForUserToday reports how many simulations the user has completed
// during the current local calendar day.
func (r *SimulationRepositorySQLite) CountForUserToday(ctx context.Context, userID string) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, sqlinline.QCountSimulationsToday, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count simulations: %w", err)
	}
	return count, nil
}

// ListRecent returns the user's latest simulations, newest first. The
// listing carries the summary columns only; answers and scenario payloads
// stay in the row until a dedicated fetch needs them.
func (r *SimulationRepositorySQLite) ListRecent(ctx context.Context, userID string, limit int) ([]domain.Simulation, error) {
	rows, err := r.db.QueryContext(ctx, sqlinline.QListSimulations, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list simulations: %w", err)
	}
	defer rows.Close()

	sims := make([]domain.Simulation, 0, limit)
	for rows.Next() {
		sim, err := scanSimulation(rows)
		if err != nil {
			return nil, err
		}
		sims = append(sims, sim)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate simulations: %w", err)
	}
	return sims, nil
}

func scanSimulation(rows *sql.Rows) (domain.Simulation, error) {
	var sim domain.Simulation
	var created string
	if err := rows.Scan(&sim.ID, &sim.UserID, &sim.Decision, &sim.Category, &sim.Horizon, &sim.RiskTolerance, &created); err != nil {
		return domain.Simulation{}, fmt.Errorf("scan simulation: %w", err)
	}
	sim.CreatedAt = parseTimestamp(created)
	return sim, nil
}

// parseTimestamp handles the formats SQLite hands back for DATETIME columns.
func parseTimestamp(v string) time.Time {
	layouts := []string{
		"2006-01-02 15:04:05",
		time.RFC3339Nano,
		time.RFC3339,
	}
	for _, layout := range layouts {
		if ts, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return ts
		}
	}
	return time.Time{}
}

package domain

import "context"

// SimulationRepository is the persistence contract for simulation records.
// The store only ever appends and reads; there is no update path.
type SimulationRepository interface {
	Save(ctx context.Context, sim *Simulation) error
	ListRecent(ctx context.Context, userID string, limit int) ([]Simulation, error)
	CountForUserToday(ctx context.Context, userID string) (int, error)
}

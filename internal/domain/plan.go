package domain

// Plan describes the usage rights attached to a subscription tier.
// A nil SimulationLimitPerDay means unlimited daily simulations; the JSON
// null is part of the wire contract consumed by clients.
type Plan struct {
	Name                  string `json:"planName"`
	SimulationLimitPerDay *int   `json:"simulationLimitPerDay"`
	PremiumReportsEnabled bool   `json:"premiumReportsEnabled"`
}

// Unlimited reports whether the plan carries no daily simulation cap.
func (p Plan) Unlimited() bool {
	return p.SimulationLimitPerDay == nil
}

// Usage is today's consumption against the plan. RemainingToday is nil
// exactly when the plan is unlimited and never negative otherwise.
type Usage struct {
	UsedToday      int  `json:"usedToday"`
	RemainingToday *int `json:"remainingToday"`
}

// UsageSnapshot is a point-in-time view of a user's plan plus today's
// consumption. Snapshots are recomputed per request and never cached.
type UsageSnapshot struct {
	Plan
	Usage Usage `json:"usage"`
}

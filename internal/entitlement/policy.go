package entitlement

import "nirnayai/internal/domain"

// Stable machine-readable denial reasons. Clients key upgrade prompts off
// these values; do not rename.
const (
	ReasonFreeLimitReached = "free_limit_reached"
	ReasonPremiumLocked    = "premium_locked"
)

// Denial is a structured rejection carrying a stable reason code and a
// human-readable upgrade message.
type Denial struct {
	Reason  string `json:"code"`
	Message string `json:"error"`
}

// CanRunSimulation reports whether the snapshot permits one more simulation
// today. A nil result means allowed. The predicate is pure: metering state
// only moves when a new simulation is recorded, which shifts UsedToday on
// the next snapshot.
func CanRunSimulation(snap domain.UsageSnapshot) *Denial {
	if snap.Unlimited() {
		return nil
	}
	if snap.Usage.UsedToday >= *snap.SimulationLimitPerDay {
		return &Denial{
			Reason:  ReasonFreeLimitReached,
			Message: "Free daily simulation limit reached. Upgrade to Pro to unlock unlimited simulations.",
		}
	}
	return nil
}

// CanGeneratePremiumReport reports whether the plan unlocks premium reports.
func CanGeneratePremiumReport(snap domain.UsageSnapshot) *Denial {
	if !snap.PremiumReportsEnabled {
		return &Denial{
			Reason:  ReasonPremiumLocked,
			Message: "Premium Decision Report is available on Pro subscription.",
		}
	}
	return nil
}

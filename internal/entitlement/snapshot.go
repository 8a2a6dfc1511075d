package entitlement

import (
	"context"
	"fmt"

	"nirnayai/internal/domain"
)

// DayCounter reports how many simulations the user has already completed
// during the current local calendar day.
type DayCounter func(ctx context.Context, userID string) (int, error)

// Snapshot combines the user's plan with today's consumption count.
//
// A counter failure propagates unchanged: defaulting to zero usage would
// unlock access the plan does not grant. RemainingToday is clamped at zero
// so a concurrent overshoot never surfaces as a negative value.
func Snapshot(ctx context.Context, userID string, resolve PlanResolver, countToday DayCounter) (domain.UsageSnapshot, error) {
	plan := resolve(userID)

	used, err := countToday(ctx, userID)
	if err != nil {
		return domain.UsageSnapshot{}, fmt.Errorf("count simulations today: %w", err)
	}

	snap := domain.UsageSnapshot{Plan: plan}
	snap.Usage.UsedToday = used
	if !plan.Unlimited() {
		remaining := *plan.SimulationLimitPerDay - used
		if remaining < 0 {
			remaining = 0
		}
		snap.Usage.RemainingToday = &remaining
	}
	return snap, nil
}

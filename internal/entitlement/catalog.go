// Package entitlement holds the plan catalog, the usage snapshot builder and
// the access policy that gates simulations and premium reports.
package entitlement

import "nirnayai/internal/domain"

// FreeDailySimulationLimit is the number of simulations a free account may
// run per local calendar day.
const FreeDailySimulationLimit = 3

// FreePlan is the default tier: capped simulations, premium reports locked.
func FreePlan() domain.Plan {
	limit := FreeDailySimulationLimit
	return domain.Plan{
		Name:                  "Free",
		SimulationLimitPerDay: &limit,
		PremiumReportsEnabled: false,
	}
}

// ProPlan has unlimited simulations and premium reports unlocked.
func ProPlan() domain.Plan {
	return domain.Plan{
		Name:                  "Pro",
		SimulationLimitPerDay: nil,
		PremiumReportsEnabled: true,
	}
}

// PlanResolver maps a user id to that user's plan. Resolvers are total:
// an unknown user resolves to the free plan, never to an error.
type PlanResolver func(userID string) domain.Plan

// StaticResolver builds a PlanResolver from a fixed set of pro user ids.
// Deployments backed by a real user-profile store swap in their own resolver.
func StaticResolver(proUserIDs ...string) PlanResolver {
	pro := make(map[string]struct{}, len(proUserIDs))
	for _, id := range proUserIDs {
		if id != "" {
			pro[id] = struct{}{}
		}
	}
	return func(userID string) domain.Plan {
		if _, ok := pro[userID]; ok {
			return ProPlan()
		}
		return FreePlan()
	}
}

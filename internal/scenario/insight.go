package scenario

import (
	"strings"

	"nirnayai/internal/domain"
)

// insightRule classifies a follow-up question by case-insensitive substring
// match. An empty keyword list always matches.
type insightRule struct {
	keywords []string
	insight  domain.FollowUpInsight
}

// insightRules is evaluated top-down and the first match wins. The order is
// a load-bearing contract: a question like "family budget" matches both the
// family and the cost rule, and must classify as family. The final rule has
// no keyword guard so classification is total.
var insightRules = []insightRule{
	{
		keywords: []string{"family", "depend"},
		insight: domain.FollowUpInsight{
			Title: "Family obligation sensitivity",
			Points: []string{
				"Decisions with fixed family outflows have lower tolerance for prolonged uncertainty.",
				"Maintain a protected monthly support threshold before increasing risk exposure.",
				"Reversibility becomes more important than upside in the first 6-9 months.",
			},
		},
	},
	{
		keywords: []string{"cost", "rent", "emi"},
		insight: domain.FollowUpInsight{
			Title: "Cost pressure check",
			Points: []string{
				"A modest increase in fixed costs can materially reduce execution runway.",
				"Budget resilience improves when discretionary spending is separated from essentials.",
				"Scenario quality improves with city-specific rent and commute validation.",
			},
		},
	},
	{
		keywords: []string{"timeline", "month", "delay"},
		insight: domain.FollowUpInsight{
			Title: "Timeline extension impact",
			Points: []string{
				"Longer timelines increase emotional and financial carrying costs.",
				"Milestone-based reviews can prevent delayed decisions from compounding risk.",
				"A fallback trigger date reduces drift and preserves option value.",
			},
		},
	},
	{
		keywords: nil,
		insight: domain.FollowUpInsight{
			Title: "Refinement insight",
			Points: []string{
				"This follow-up changes the risk distribution more than the headline upside.",
				"Prioritize constraints that affect cash flow, reversibility, and execution bandwidth.",
				"Use this insight as an additional assumption layer, not a single definitive answer.",
			},
		},
	},
}

func (r insightRule) matches(normalized string) bool {
	if len(r.keywords) == 0 {
		return true
	}
	for _, kw := range r.keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// BuildFollowUpInsight classifies a free-text follow-up question into an
// insight block. Deterministic per matched category; callers append a
// restatement of the original question as a trailing point.
func BuildFollowUpInsight(questionText string) domain.FollowUpInsight {
	normalized := strings.ToLower(questionText)
	for _, rule := range insightRules {
		if rule.matches(normalized) {
			return domain.FollowUpInsight{
				Title:  rule.insight.Title,
				Points: append([]string(nil), rule.insight.Points...),
			}
		}
	}
	// Unreachable: the last rule has no keyword guard.
	return domain.FollowUpInsight{}
}

package scenario

import (
	"fmt"
	"strings"

	"nirnayai/internal/domain"
)

// BuildPremiumReport produces the pro-tier report for a decision context.
// The summary interpolates the caller's text (or a placeholder when empty);
// the section checklist is fixed and independent of input.
func BuildPremiumReport(decisionText string) domain.PremiumReport {
	subject := strings.TrimSpace(decisionText)
	if subject == "" {
		subject = "your decision context"
	}
	return domain.PremiumReport{
		Title:   "Premium Decision Report",
		Summary: fmt.Sprintf("Deep-dive report for: %s", subject),
		Sections: []string{
			"Sensitivity analysis (income, costs, timeline)",
			"Downside guardrails and reversal triggers",
			"Execution checkpoints for the next 90 days",
		},
	}
}

package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPremiumReportInterpolatesDecision(t *testing.T) {
	report := BuildPremiumReport("quit my job and start a cafe in Indore")

	assert.Equal(t, "Premium Decision Report", report.Title)
	assert.Equal(t, "Deep-dive report for: quit my job and start a cafe in Indore", report.Summary)
	assert.Len(t, report.Sections, 3)
}

func TestBuildPremiumReportEmptyDecisionUsesPlaceholder(t *testing.T) {
	for _, decision := range []string{"", "   "} {
		report := BuildPremiumReport(decision)
		assert.Equal(t, "Deep-dive report for: your decision context", report.Summary)
	}
}

func TestBuildPremiumReportSectionsFixed(t *testing.T) {
	a := BuildPremiumReport("one decision")
	b := BuildPremiumReport("a completely different decision")
	assert.Equal(t, a.Sections, b.Sections)
}

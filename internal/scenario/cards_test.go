package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nirnayai/internal/domain"
)

func baseRequest(category string) domain.DecisionRequest {
	return domain.DecisionRequest{
		Decision:      "Should I take the offer in another city or stay put?",
		Category:      category,
		Horizon:       "12 months",
		RiskTolerance: "balanced",
		Answers:       []domain.Answer{},
	}
}

func TestGenerateScenarioCardsAllPathsNonEmpty(t *testing.T) {
	for _, category := range append(Categories(), "astrology", "") {
		cards := GenerateScenarioCards(baseRequest(category))

		assert.NotEmpty(t, cards.OptimisticPath, "optimistic path for %q", category)
		assert.NotEmpty(t, cards.MostLikelyPath, "most likely path for %q", category)
		assert.NotEmpty(t, cards.RiskPath, "risk path for %q", category)
		assert.NotEmpty(t, cards.HiddenTradeOffs, "hidden trade-offs for %q", category)
		assert.NotEmpty(t, cards.AssumptionsUsed, "assumptions for %q", category)
	}
}

func TestGenerateScenarioCardsDeterministic(t *testing.T) {
	req := baseRequest(CategoryCareer)
	req.RiskTolerance = "aggressive"
	req.Answers = []domain.Answer{
		{Prompt: "Surplus?", Answer: "about 30k"},
		{Prompt: "Dependents?", Answer: ""},
	}

	first := GenerateScenarioCards(req)
	second := GenerateScenarioCards(req)
	assert.Equal(t, first, second)
}

func TestGenerateScenarioCardsUsesHorizonAndTolerance(t *testing.T) {
	req := baseRequest(CategoryFinance)
	req.Horizon = "18 months"
	req.RiskTolerance = "conservative"

	cards := GenerateScenarioCards(req)

	assert.Contains(t, cards.AssumptionsUsed, "Planning horizon taken as 18 months.")
	assert.Contains(t, cards.AssumptionsUsed, "Risk tolerance treated as conservative.")
	assert.Contains(t, cards.RiskPath[len(cards.RiskPath)-1], "conservative risk tolerance")
}

func TestGenerateScenarioCardsCountsOnlyAnsweredPrompts(t *testing.T) {
	req := baseRequest(CategoryBusiness)
	req.Answers = []domain.Answer{
		{Prompt: "Runway?", Answer: "9 months"},
		{Prompt: "First customer?", Answer: "  "},
		{Prompt: "Burn?", Answer: "60k"},
	}

	cards := GenerateScenarioCards(req)
	assert.Contains(t, cards.AssumptionsUsed, "Incorporated 2 clarifying answers as fixed constraints.")
}

func TestGenerateScenarioCardsMissingAnswers(t *testing.T) {
	req := baseRequest(CategoryRelocation)
	req.Answers = nil

	cards := GenerateScenarioCards(req)
	require.NotEmpty(t, cards.AssumptionsUsed)
	assert.Contains(t, cards.AssumptionsUsed, "No clarifying answers were provided; generic baseline assumptions applied.")
}

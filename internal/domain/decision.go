package domain

import (
	"strings"
	"time"
)

// MinDecisionLength is the minimum trimmed length of a decision context.
const MinDecisionLength = 20

// Defaults applied when a simulate payload omits optional fields.
const (
	DefaultCategory      = "other"
	DefaultHorizon       = "12 months"
	DefaultRiskTolerance = "balanced"
)

// Answer pairs a clarifying prompt with the user's response.
type Answer struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// DecisionRequest is the payload of one simulate call. It is immutable once
// normalized.
type DecisionRequest struct {
	Decision      string   `json:"decision"`
	Category      string   `json:"category"`
	Horizon       string   `json:"horizon"`
	RiskTolerance string   `json:"riskTolerance"`
	Answers       []Answer `json:"answers"`
}

// Normalize trims the decision text and fills optional fields with their
// defaults.
func (r *DecisionRequest) Normalize() {
	r.Decision = strings.TrimSpace(r.Decision)
	if strings.TrimSpace(r.Category) == "" {
		r.Category = DefaultCategory
	}
	if strings.TrimSpace(r.Horizon) == "" {
		r.Horizon = DefaultHorizon
	}
	if strings.TrimSpace(r.RiskTolerance) == "" {
		r.RiskTolerance = DefaultRiskTolerance
	}
	if r.Answers == nil {
		r.Answers = []Answer{}
	}
}

// Validate checks caller-correctable input problems.
func (r DecisionRequest) Validate() error {
	if len(strings.TrimSpace(r.Decision)) < MinDecisionLength {
		return ErrDecisionTooShort
	}
	return nil
}

// ScenarioCardSet is the five-path narrative output of one simulation. Each
// path keeps its authoring order and is never empty. The set is persisted
// verbatim and never mutated after creation.
type ScenarioCardSet struct {
	OptimisticPath  []string `json:"optimisticPath"`
	MostLikelyPath  []string `json:"mostLikelyPath"`
	RiskPath        []string `json:"riskPath"`
	HiddenTradeOffs []string `json:"hiddenTradeOffs"`
	AssumptionsUsed []string `json:"assumptionsUsed"`
}

// FollowUpInsight is supplementary guidance generated from a free-text
// refinement question.
type FollowUpInsight struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

// PremiumReport is the pro-tier deep-dive artifact.
type PremiumReport struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Sections []string `json:"sections"`
}

// Simulation is one persisted run. Records are append-only; the service
// never updates or deletes them.
type Simulation struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Decision      string          `json:"decision"`
	Category      string          `json:"category"`
	Horizon       string          `json:"horizon"`
	RiskTolerance string          `json:"riskTolerance"`
	Answers       []Answer        `json:"answers,omitempty"`
	Scenarios     ScenarioCardSet `json:"scenarios,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Package scenario turns a decision payload into clarifying questions, the
// five-path scenario card set, follow-up insights and the premium report.
// Everything here is a pure function over ordered rule tables: identical
// input always yields identical output, and unknown categories degrade to
// generic content instead of failing.
package scenario

import "strings"

// Category identifiers accepted by the generators. Anything else falls back
// to the generic rule set.
const (
	CategoryCareer     = "career"
	CategoryFinance    = "finance"
	CategoryRelocation = "relocation"
	CategoryEducation  = "education"
	CategoryBusiness   = "business"
	CategoryPurchase   = "purchase"
	CategoryOther      = "other"
)

var categories = []string{
	CategoryCareer,
	CategoryFinance,
	CategoryRelocation,
	CategoryEducation,
	CategoryBusiness,
	CategoryPurchase,
	CategoryOther,
}

// Categories returns the supported category identifiers in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// questionTable maps each category to its clarifying prompts. First match
// wins; the table order is the evaluation order.
var questionTable = []struct {
	category string
	prompts  []string
}{
	{CategoryCareer, []string{
		"What is your current monthly surplus after fixed obligations?",
		"Does the new role change your income immediately, or only after a ramp-up period?",
		"How reversible is this move if it does not work out within a year?",
		"Who depends on your income staying stable during the transition?",
	}},
	{CategoryFinance, []string{
		"What share of your liquid savings would this commitment consume?",
		"Do you already carry EMIs or other fixed repayments each month?",
		"How many months of essential expenses does your emergency buffer cover?",
	}},
	{CategoryRelocation, []string{
		"Have you validated rent and commute costs in the destination city?",
		"Is anyone relocating with you, and does their income or schooling depend on the timing?",
		"What would pull you back within the first year, and what would returning cost?",
	}},
	{CategoryEducation, []string{
		"Will you study full-time, or keep earning while you learn?",
		"How is the program funded: savings, a loan, or employer sponsorship?",
		"What salary change do you realistically expect within a year of finishing?",
	}},
	{CategoryBusiness, []string{
		"How many months can you operate before the venture must pay you a salary?",
		"Is there a committed first customer, or is demand still an assumption?",
		"What is your personal monthly burn while the business ramps up?",
	}},
	{CategoryPurchase, []string{
		"Is this purchase financed, and what is the all-in monthly cost including running expenses?",
		"What is the resale or exit value if you change your mind in a year?",
		"Which recurring costs, such as insurance, maintenance and fuel, have you priced in?",
	}},
}

var genericQuestions = []string{
	"What constraint matters most here: money, time, or peace of mind?",
	"What would make you call this decision a mistake six months from now?",
	"Which parts of this decision are reversible, and which are one-way doors?",
}

// ClarifyingQuestions returns the ordered prompt set for a category. The
// decision text is accepted for future refinement but does not currently
// influence the prompts. Unknown categories get the generic set; the result
// is never empty.
func ClarifyingQuestions(category, decisionText string) []string {
	_ = decisionText

	key := normalizeCategory(category)
	for _, row := range questionTable {
		if row.category == key {
			return append([]string(nil), row.prompts...)
		}
	}
	return append([]string(nil), genericQuestions...)
}

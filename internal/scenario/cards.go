package scenario

import (
	"fmt"
	"strings"

	"nirnayai/internal/domain"
)

// pathRule binds a category to the base statements of one scenario path.
// Rules are evaluated first-match-wins in authoring order, and the output
// keeps that order.
type pathRule struct {
	category string
	lines    []string
}

func linesFor(rules []pathRule, category string, fallback []string) []string {
	key := normalizeCategory(category)
	for _, rule := range rules {
		if rule.category == key {
			return append([]string(nil), rule.lines...)
		}
	}
	return append([]string(nil), fallback...)
}

var optimisticRules = []pathRule{
	{CategoryCareer, []string{
		"The new role compounds quickly: within two review cycles you are earning more and learning faster than the current track allowed.",
		"Your existing network carries over, so the reputation reset is shallower than feared.",
	}},
	{CategoryFinance, []string{
		"The commitment fits inside your surplus, and the freed-up mental bandwidth improves every other money decision you make.",
		"Returns land at the top of the expected band while your emergency buffer stays untouched.",
	}},
	{CategoryRelocation, []string{
		"The destination city delivers on income and lifestyle, and the setup costs are absorbed within the first few months.",
		"New local ties form faster than expected, which removes the main emotional drag of the move.",
	}},
	{CategoryEducation, []string{
		"The program pays for itself: credential plus new network unlock roles that were previously out of reach.",
		"You keep partial income during the course, so the funding plan never comes under stress.",
	}},
	{CategoryBusiness, []string{
		"Early customers convert ahead of plan and the venture reaches personal break-even before your runway is half spent.",
		"The first hire works out, freeing you to sell instead of operate.",
	}},
	{CategoryPurchase, []string{
		"Total ownership cost stays inside the budgeted envelope and the purchase starts saving you time immediately.",
		"Resale value holds, so the decision stays cheap to reverse.",
	}},
}

var genericOptimistic = []string{
	"The decision lands near the best realistic case: the main benefit arrives early and the feared costs stay theoretical.",
	"Momentum from the first win makes the follow-on choices easier and cheaper.",
}

var mostLikelyRules = []pathRule{
	{CategoryCareer, []string{
		"The switch is net positive but slower than the pitch: expect a plateau of three to six months before the gains show.",
		"Compensation improves moderately; the bigger change is the skill and option set you build.",
	}},
	{CategoryFinance, []string{
		"Outcomes cluster around the middle of the range; discipline on fixed outflows matters more than picking the perfect instrument.",
		"You will revisit the allocation once within the horizon as real costs replace estimates.",
	}},
	{CategoryRelocation, []string{
		"The move works, but true cost of living runs ten to twenty percent above the spreadsheet for the first year.",
		"Settling in takes one full season of routines before the city feels like a base rather than a trial.",
	}},
	{CategoryEducation, []string{
		"You finish the program with a useful but not transformative lift; the payoff depends on how aggressively you use the new credential.",
		"Study load crowds out side income for longer than planned.",
	}},
	{CategoryBusiness, []string{
		"Revenue arrives, but later and lumpier than the model; the venture survives on cost control rather than explosive growth.",
		"Your role stays hands-on well past the point you expected to delegate.",
	}},
	{CategoryPurchase, []string{
		"This becomes a budget-discipline decision: capped monthly cost plus an emergency buffer keeps it comfortably positive.",
		"Running costs land slightly above the brochure figure, which is normal and survivable.",
	}},
}

var genericMostLikely = []string{
	"The most probable outcome is a managed middle: real progress, a few unplanned costs, and a timeline that stretches.",
	"The decision is judged not by the launch but by how you handle the first deviation from plan.",
}

var riskRules = []pathRule{
	{CategoryCareer, []string{
		"The biggest risk is a culture or manager mismatch that stalls you for a year while the old track keeps moving.",
		"A probation-period exit would leave you negotiating from a weaker position than today.",
	}},
	{CategoryFinance, []string{
		"Stacking this commitment on existing obligations without a buffer turns one bad month into a cascade.",
		"Liquidity risk dominates: the cost of unwinding early is larger than the headline loss.",
	}},
	{CategoryRelocation, []string{
		"If income assumptions slip, the fixed costs of the new city consume the buffer you planned to rebuild with.",
		"A forced return move doubles the transaction costs and resets your local progress to zero.",
	}},
	{CategoryEducation, []string{
		"The downside case is graduating into a soft market with loan repayments that start regardless.",
		"Dropping out midway pays the cost without the credential.",
	}},
	{CategoryBusiness, []string{
		"The venture can fail slowly: enough revenue to continue, not enough to pay you, draining savings month by month.",
		"Key-person dependence means one illness or departure stalls everything.",
	}},
	{CategoryPurchase, []string{
		"Underestimating total ownership cost, including insurance, servicing and surprise repairs, is the classic failure mode.",
		"Financing plus depreciation can leave you owing more than the asset is worth at exit.",
	}},
}

var genericRisk = []string{
	"The main risk is committing fixed costs against uncertain income and losing the ability to change course cheaply.",
	"Slow failure is more dangerous than fast failure here, because it quietly consumes the reserves you would need to recover.",
}

var tradeOffRules = []pathRule{
	{CategoryCareer, []string{
		"Title and salary are visible; lost optionality, vesting resets and commute hours are not.",
		"Leaving also prices in the internal reputation you had already paid for.",
	}},
	{CategoryFinance, []string{
		"Locking money away trades return for access; the cost only shows up the day you need the cash early.",
		"Every fixed repayment narrows future choices more than the interest rate suggests.",
	}},
	{CategoryRelocation, []string{
		"Distance from family support quietly raises the cost of every emergency.",
		"You trade an established support network for upside, and networks take years to rebuild.",
	}},
	{CategoryEducation, []string{
		"The real price is the earning and compounding you forgo while studying, not the tuition line.",
		"A credential ages; the network you build alongside it is the durable asset.",
	}},
	{CategoryBusiness, []string{
		"Founder income volatility taxes the household even when the company is fine.",
		"Control and flexibility come bundled with being the last person paid.",
	}},
	{CategoryPurchase, []string{
		"Hidden factors: storage or parking, seasonal usability, service quality nearby, and the gear around the purchase.",
		"Ownership commits future attention, not just money.",
	}},
}

var genericTradeOffs = []string{
	"Every visible gain here is paired with a quiet cost: time, optionality, or a dependency on things staying as they are.",
	"What you stop doing because of this decision is as important as what it lets you start.",
}

var assumptionRules = []pathRule{
	{CategoryCareer, []string{"Assumes the market for your skills stays at least as liquid as it is today."}},
	{CategoryFinance, []string{"Assumes no major involuntary expense shock within the horizon."}},
	{CategoryRelocation, []string{"Assumes destination living costs were estimated from current listings, not averages."}},
	{CategoryEducation, []string{"Assumes the program completes on schedule and the credential is recognized where you plan to use it."}},
	{CategoryBusiness, []string{"Assumes the founding team stays intact through the runway period."}},
	{CategoryPurchase, []string{"Assumes surprise running costs appear and are absorbed by a maintenance buffer, not by credit."}},
}

var genericAssumptions = []string{
	"Assumes your stated inputs are current and no undisclosed obligation changes the picture.",
}

// GenerateScenarioCards maps a normalized decision request to the five-path
// card set. Deterministic for identical input: no randomness, no clock, no
// external calls, so a stored request can reproduce its report later. Every
// path is non-empty even for unknown categories and missing answers.
func GenerateScenarioCards(req domain.DecisionRequest) domain.ScenarioCardSet {
	return domain.ScenarioCardSet{
		OptimisticPath:  optimisticPath(req),
		MostLikelyPath:  mostLikelyPath(req),
		RiskPath:        riskPath(req),
		HiddenTradeOffs: linesFor(tradeOffRules, req.Category, genericTradeOffs),
		AssumptionsUsed: assumptionsUsed(req),
	}
}

func optimisticPath(req domain.DecisionRequest) []string {
	out := linesFor(optimisticRules, req.Category, genericOptimistic)
	if isAggressive(req.RiskTolerance) {
		out = append(out, "Your higher risk appetite lets you lean into the upside earlier than a cautious plan would.")
	}
	out = append(out, fmt.Sprintf("Early positive signals should be visible well inside your %s horizon.", req.Horizon))
	return out
}

func mostLikelyPath(req domain.DecisionRequest) []string {
	out := linesFor(mostLikelyRules, req.Category, genericMostLikely)
	if n := answeredCount(req.Answers); n > 0 {
		out = append(out, fmt.Sprintf("Your %d clarifying answers narrow the central estimate.", n))
	}
	out = append(out, fmt.Sprintf("Treat %s as the full adjustment window; most of the change lands around its midpoint.", req.Horizon))
	return out
}

func riskPath(req domain.DecisionRequest) []string {
	out := linesFor(riskRules, req.Category, genericRisk)
	switch {
	case isConservative(req.RiskTolerance):
		out = append(out, "With a conservative risk tolerance, cap the downside first: decide the exit condition before committing.")
	case isAggressive(req.RiskTolerance):
		out = append(out, "An aggressive stance concentrates the downside; one stalled quarter hits harder without a buffer.")
	}
	return out
}

func assumptionsUsed(req domain.DecisionRequest) []string {
	out := linesFor(assumptionRules, req.Category, genericAssumptions)
	out = append(out,
		fmt.Sprintf("Planning horizon taken as %s.", req.Horizon),
		fmt.Sprintf("Risk tolerance treated as %s.", req.RiskTolerance),
	)
	if n := answeredCount(req.Answers); n > 0 {
		out = append(out, fmt.Sprintf("Incorporated %d clarifying answers as fixed constraints.", n))
	} else {
		out = append(out, "No clarifying answers were provided; generic baseline assumptions applied.")
	}
	return out
}

func answeredCount(answers []domain.Answer) int {
	n := 0
	for _, a := range answers {
		if strings.TrimSpace(a.Answer) != "" {
			n++
		}
	}
	return n
}

func isAggressive(tolerance string) bool {
	return strings.EqualFold(strings.TrimSpace(tolerance), "aggressive")
}

func isConservative(tolerance string) bool {
	return strings.EqualFold(strings.TrimSpace(tolerance), "conservative")
}

// internal/engine/scenario.go
package engine

// Scenario is a named what-if action with zero or more signed deltas. Deltas
// are pointers so an absent field contributes nothing, while an explicit zero
// still counts as present for the utilization step below.
type Scenario struct {
	Name              string `json:"scenario"`
	UtilizationChange *int   `json:"utilizationChange,omitempty"`
	CreditAgeImpact   *int   `json:"creditAgeImpact,omitempty"`
	InquiryImpact     *int   `json:"inquiryImpact,omitempty"`
	PaymentImpact     *int   `json:"paymentImpact,omitempty"`
}

type ScenarioResult struct {
	Scenario       string `json:"scenario"`
	CurrentScore   int    `json:"currentScore"`
	ProjectedScore int    `json:"projectedScore"`
	Change         int    `json:"change"`
	Impact         string `json:"impact"`
}

// DefaultScenarios is the stock what-if set offered when the caller supplies
// none.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "Pay off all credit cards", UtilizationChange: intPtr(-50)},
		{Name: "Close oldest account", CreditAgeImpact: intPtr(-20)},
		{Name: "Apply for a new loan", InquiryImpact: intPtr(-10)},
		{Name: "Miss one payment", PaymentImpact: intPtr(-30)},
	}
}

// EvaluateScenarios applies each scenario's deltas to the current score.
// The utilization contribution is a sign-based step (+25 for a decrease,
// -15 for an increase), not proportional to magnitude; this matches the
// established behavior and must not be "fixed" without a product decision.
func EvaluateScenarios(currentScore int, scenarios []Scenario) []ScenarioResult {
	if len(scenarios) == 0 {
		scenarios = DefaultScenarios()
	}

	results := make([]ScenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		change := 0
		if sc.UtilizationChange != nil {
			if *sc.UtilizationChange <= 0 {
				change += 25
			} else {
				change -= 15
			}
		}
		if sc.CreditAgeImpact != nil {
			change += *sc.CreditAgeImpact
		}
		if sc.InquiryImpact != nil {
			change += *sc.InquiryImpact
		}
		if sc.PaymentImpact != nil {
			change += *sc.PaymentImpact
		}

		projected := currentScore + change
		if projected < scoreFloor {
			projected = scoreFloor
		}
		if projected > scoreCeiling {
			projected = scoreCeiling
		}

		impact := "Neutral"
		switch {
		case projected-currentScore > 0:
			impact = "Positive"
		case projected-currentScore < 0:
			impact = "Negative"
		}

		results = append(results, ScenarioResult{
			Scenario:       sc.Name,
			CurrentScore:   currentScore,
			ProjectedScore: projected,
			Change:         projected - currentScore,
			Impact:         impact,
		})
	}

	return results
}

func intPtr(v int) *int { return &v }

// internal/engine/improvement.go
package engine

import "math"

// Factor coefficients shared by the improvement estimator and the risk
// decomposer. They mirror the bureau weighting of each factor.
const (
	coeffPaymentHistory = 0.35
	coeffUtilization    = 0.30
	coeffCreditAge      = 0.15
	coeffCreditMix      = 0.10
	coeffInquiries      = 0.10
)

// Discount applied to payment-history headroom: past delinquencies can only
// partially be recovered within the projection horizon.
const paymentRecoveryFactor = 0.5

// Share of excess utilization that converts into score points once paid down.
const utilizationRecoveryFactor = 0.8

const inquiryCooldownPoints = 5.0

type ImprovementAction struct {
	Area   string  `json:"area"`
	Action string  `json:"action"`
	Points float64 `json:"points"`
}

type ImprovementPotential struct {
	TotalPotential int                 `json:"totalPotential"`
	MonthlyGain    int                 `json:"monthlyGain"`
	Improvements   []ImprovementAction `json:"improvements"`
}

// EstimateImprovement weights the factor headroom into an achievable score
// gain with itemized actions. TotalPotential is never negative.
func EstimateImprovement(f FactorSet) ImprovementPotential {
	potential := 0.0
	actions := []ImprovementAction{}

	if f.PaymentHistory.Score < 100 {
		pts := (100 - f.PaymentHistory.Score) * coeffPaymentHistory * paymentRecoveryFactor
		potential += pts
		actions = append(actions, ImprovementAction{
			Area:   "paymentHistory",
			Action: "Make all payments on time going forward",
			Points: round2(pts),
		})
	}

	if f.CreditUtilization.Percentage > 30 {
		pts := (f.CreditUtilization.Percentage - 30) * coeffUtilization * utilizationRecoveryFactor
		potential += pts
		actions = append(actions, ImprovementAction{
			Area:   "creditUtilization",
			Action: "Reduce credit utilization below 30%",
			Points: round2(pts),
		})
	}

	if f.RecentInquiries.Count > 2 {
		potential += inquiryCooldownPoints
		actions = append(actions, ImprovementAction{
			Area:   "recentInquiries",
			Action: "Avoid new credit applications for 6 months",
			Points: inquiryCooldownPoints,
		})
	}

	total := int(math.Round(potential))
	return ImprovementPotential{
		TotalPotential: total,
		MonthlyGain:    int(math.Round(float64(total) / float64(projectionMonths))),
		Improvements:   actions,
	}
}

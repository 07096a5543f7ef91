// internal/engine/risk.go
package engine

import "fmt"

// Risk contribution weights. Fixed constants that always sum to 100,
// independent of input.
const (
	riskWeightPayment     = 35
	riskWeightUtilization = 30
	riskWeightAge         = 15
	riskWeightMix         = 10
	riskWeightInquiries   = 10
)

const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

type RiskFactor struct {
	ContributionWeight int    `json:"contributionWeight"`
	Status             string `json:"status"`
	Detail             string `json:"detail"`
}

type RiskBreakdown struct {
	OverallRisk string                `json:"overallRisk"`
	RiskScore   float64               `json:"riskScore"`
	Breakdown   map[string]RiskFactor `json:"breakdown"`
	CreditScore int                   `json:"creditScore"`
}

// DecomposeRisk allocates the fixed weights across factors. A factor in high
// status contributes its full weight to the risk score, medium contributes
// half, low contributes nothing.
func DecomposeRisk(creditScore int, f FactorSet) RiskBreakdown {
	breakdown := map[string]RiskFactor{
		"paymentHistory": {
			ContributionWeight: riskWeightPayment,
			Status:             bandStatus(f.PaymentHistory.Score, 95, 85),
			Detail:             fmt.Sprintf("%.1f%% of payments on time", f.PaymentHistory.Score),
		},
		"creditUtilization": {
			ContributionWeight: riskWeightUtilization,
			Status:             bandStatusInverse(f.CreditUtilization.Percentage, 30, 50),
			Detail:             fmt.Sprintf("%.1f%% of available credit in use", f.CreditUtilization.Percentage),
		},
		"creditAge": {
			ContributionWeight: riskWeightAge,
			Status:             bandStatus(f.CreditAge.Years, 7, 3),
			Detail:             fmt.Sprintf("oldest account is %.1f years old", f.CreditAge.Years),
		},
		"creditMix": {
			ContributionWeight: riskWeightMix,
			Status:             bandStatus(float64(f.CreditMix.DistinctTypes), 4, 2),
			Detail:             fmt.Sprintf("%d distinct credit types held", f.CreditMix.DistinctTypes),
		},
		"recentInquiries": {
			ContributionWeight: riskWeightInquiries,
			Status:             bandStatusInverse(float64(f.RecentInquiries.Count), 2, 5),
			Detail:             fmt.Sprintf("%d enquiries in the last 180 days", f.RecentInquiries.Count),
		},
	}

	riskScore := 0.0
	for _, rf := range breakdown {
		switch rf.Status {
		case RiskHigh:
			riskScore += float64(rf.ContributionWeight)
		case RiskMedium:
			riskScore += float64(rf.ContributionWeight) * 0.5
		}
	}

	overall := "Low"
	switch {
	case riskScore >= 50:
		overall = "High"
	case riskScore >= 25:
		overall = "Medium"
	}

	return RiskBreakdown{
		OverallRisk: overall,
		RiskScore:   riskScore,
		Breakdown:   breakdown,
		CreditScore: creditScore,
	}
}

// bandStatus classifies a "higher is better" metric: >= good is low risk,
// >= fair is medium, anything below is high.
func bandStatus(value, good, fair float64) string {
	switch {
	case value >= good:
		return RiskLow
	case value >= fair:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// bandStatusInverse classifies a "lower is better" metric.
func bandStatusInverse(value, good, fair float64) string {
	switch {
	case value <= good:
		return RiskLow
	case value <= fair:
		return RiskMedium
	default:
		return RiskHigh
	}
}

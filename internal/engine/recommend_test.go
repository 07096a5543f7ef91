// internal/engine/recommend_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend_AlwaysEndsWithMonitoring(t *testing.T) {
	for _, f := range []FactorSet{{}, lowRiskFactors(), highRiskFactors()} {
		recs := Recommend(f)

		assert.NotEmpty(t, recs)
		last := recs[len(recs)-1]
		assert.Equal(t, "info", last.Priority)
		assert.Equal(t, "Monitor Your Credit Report", last.Title)
	}
}

func TestRecommend_HealthyProfileGetsOnlyMonitoring(t *testing.T) {
	f := FactorSet{
		PaymentHistory:    PaymentHistoryFactor{Score: 98},
		CreditUtilization: UtilizationFactor{Percentage: 20},
		CreditAge:         CreditAgeFactor{Years: 9},
		CreditMix:         CreditMixFactor{DistinctTypes: 4},
		RecentInquiries:   InquiryFactor{Count: 1},
	}

	recs := Recommend(f)

	assert.Len(t, recs, 1)
	assert.Equal(t, "info", recs[0].Priority)
}

func TestRecommend_RulePriorities(t *testing.T) {
	tests := []struct {
		name             string
		f                FactorSet
		expectedPriority string
		expectedTitle    string
	}{
		{
			name:             "severe utilization is critical",
			f:                FactorSet{CreditUtilization: UtilizationFactor{Percentage: 65}, PaymentHistory: PaymentHistoryFactor{Score: 98}, CreditAge: CreditAgeFactor{Years: 5}, CreditMix: CreditMixFactor{DistinctTypes: 3}},
			expectedPriority: "critical",
			expectedTitle:    "Reduce Card Balances Immediately",
		},
		{
			name:             "elevated utilization is high",
			f:                FactorSet{CreditUtilization: UtilizationFactor{Percentage: 40}, PaymentHistory: PaymentHistoryFactor{Score: 98}, CreditAge: CreditAgeFactor{Years: 5}, CreditMix: CreditMixFactor{DistinctTypes: 3}},
			expectedPriority: "high",
			expectedTitle:    "Optimize Credit Utilization",
		},
		{
			name:             "payment gaps trigger autopay advice",
			f:                FactorSet{CreditUtilization: UtilizationFactor{Percentage: 20}, PaymentHistory: PaymentHistoryFactor{Score: 90}, CreditAge: CreditAgeFactor{Years: 5}, CreditMix: CreditMixFactor{DistinctTypes: 3}},
			expectedPriority: "high",
			expectedTitle:    "Never Miss a Payment",
		},
		{
			name:             "young file builds history",
			f:                FactorSet{CreditUtilization: UtilizationFactor{Percentage: 20}, PaymentHistory: PaymentHistoryFactor{Score: 98}, CreditAge: CreditAgeFactor{Years: 1}, CreditMix: CreditMixFactor{DistinctTypes: 3}},
			expectedPriority: "medium",
			expectedTitle:    "Build Credit History",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := Recommend(tt.f)

			assert.Len(t, recs, 2) // one rule plus the monitoring item
			assert.Equal(t, tt.expectedPriority, recs[0].Priority)
			assert.Equal(t, tt.expectedTitle, recs[0].Title)
		})
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	f := highRiskFactors()
	assert.Equal(t, Recommend(f), Recommend(f))
}

// internal/engine/factors_test.go
package engine

import (
	"testing"
	"time"

	"credit-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestExtractFactors_EmptyReport(t *testing.T) {
	snap := &models.CreditReportSnapshot{ClientID: "client-1", CreditScore: 650}

	f := ExtractFactors(snap, testNow)

	assert.Equal(t, 85.0, f.PaymentHistory.Score)
	assert.Equal(t, 0, f.PaymentHistory.Total)
	assert.Equal(t, "Good", f.PaymentHistory.Rating)

	assert.Equal(t, 50.0, f.CreditUtilization.Percentage)
	assert.Equal(t, 50.0, f.CreditUtilization.Score)
	assert.Equal(t, "Moderate", f.CreditUtilization.Rating)

	assert.Equal(t, 0.0, f.CreditAge.Years)
	assert.Equal(t, "Building", f.CreditAge.Rating)

	assert.Equal(t, 0, f.CreditMix.DistinctTypes)
	assert.Equal(t, "Limited", f.CreditMix.Rating)

	assert.Equal(t, 0, f.RecentInquiries.Count)
	assert.Equal(t, "Good", f.RecentInquiries.Rating)
}

func TestPaymentHistoryFactor_Tokenization(t *testing.T) {
	tests := []struct {
		name          string
		codes         []string
		expectedScore float64
		expectedTotal int
		expectedRate  string
	}{
		{
			name:          "pipe delimited with one delinquency",
			codes:         []string{"STD|STD|030"},
			expectedScore: 66.67,
			expectedTotal: 3,
			expectedRate:  "Needs Improvement",
		},
		{
			name:          "digit grid all on time",
			codes:         []string{"000000"},
			expectedScore: 100,
			expectedTotal: 6,
			expectedRate:  "Excellent",
		},
		{
			name:          "not-reported periods are skipped",
			codes:         []string{"XXX|STD|XXX"},
			expectedScore: 100,
			expectedTotal: 1,
			expectedRate:  "Excellent",
		},
		{
			name:          "comma and space delimiters",
			codes:         []string{"OK,OK 090"},
			expectedScore: 66.67,
			expectedTotal: 3,
			expectedRate:  "Needs Improvement",
		},
		{
			name:          "multiple accounts aggregate",
			codes:         []string{"STD|STD", "000", "090"},
			expectedScore: 87.5,
			expectedTotal: 8,
			expectedRate:  "Good",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := make([]models.Account, 0, len(tt.codes))
			for _, code := range tt.codes {
				accounts = append(accounts, models.Account{PaymentHistoryCode: code})
			}

			f := paymentHistoryFactor(accounts)

			assert.InDelta(t, tt.expectedScore, f.Score, 0.01)
			assert.Equal(t, tt.expectedTotal, f.Total)
			assert.Equal(t, tt.expectedRate, f.Rating)
		})
	}
}

func TestUtilizationFactor(t *testing.T) {
	tests := []struct {
		name        string
		accounts    []models.Account
		expectedPct float64
		expectedRat string
	}{
		{
			name: "optimal utilization",
			accounts: []models.Account{
				{CreditLimit: 100000, CurrentBalance: 30000},
			},
			expectedPct: 30,
			expectedRat: "Optimal",
		},
		{
			name: "high credit used when limit missing",
			accounts: []models.Account{
				{HighCredit: 50000, CurrentBalance: 35000},
			},
			expectedPct: 70,
			expectedRat: "High",
		},
		{
			name: "aggregated across accounts",
			accounts: []models.Account{
				{CreditLimit: 100000, CurrentBalance: 20000},
				{CreditLimit: 100000, CurrentBalance: 60000},
			},
			expectedPct: 40,
			expectedRat: "Moderate",
		},
		{
			name: "accounts without any limit fall back to default",
			accounts: []models.Account{
				{CurrentBalance: 5000},
			},
			expectedPct: 50,
			expectedRat: "Moderate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := utilizationFactor(tt.accounts)
			assert.InDelta(t, tt.expectedPct, f.Percentage, 0.01)
			assert.Equal(t, tt.expectedRat, f.Rating)
			assert.InDelta(t, 100-tt.expectedPct, f.Score, 0.01)
		})
	}
}

func TestCreditAgeFactor(t *testing.T) {
	accounts := []models.Account{
		{DateOpened: testNow.AddDate(-4, 0, 0)},
		{DateOpened: testNow.AddDate(-1, 0, 0)},
		{}, // missing open date is ignored
	}

	f := creditAgeFactor(accounts, testNow)

	assert.InDelta(t, 4.0, f.Years, 0.02)
	assert.Equal(t, "Good", f.Rating)

	old := creditAgeFactor([]models.Account{{DateOpened: testNow.AddDate(-10, 0, 0)}}, testNow)
	assert.Equal(t, "Excellent", old.Rating)
}

func TestCreditMixFactor(t *testing.T) {
	accounts := []models.Account{
		{AccountType: "credit_card"},
		{AccountType: "auto_loan"},
		{AccountType: "credit_card"},
		{AccountType: ""}, // unrecognized type is its own category
	}

	f := creditMixFactor(accounts)

	assert.Equal(t, 3, f.DistinctTypes)
	assert.Equal(t, 60, f.Score)
	assert.Equal(t, "Good", f.Rating)
}

func TestInquiryFactor_Window(t *testing.T) {
	enquiries := []models.Enquiry{
		{Date: testNow.AddDate(0, 0, -10)},
		{Date: testNow.AddDate(0, 0, -179)},
		{Date: testNow.AddDate(0, 0, -200)}, // outside the 180-day window
		{Date: testNow.AddDate(0, 0, 5)},    // future-dated, excluded
		{},                                  // undated, excluded
	}

	f := inquiryFactor(enquiries, testNow)

	assert.Equal(t, 2, f.Count)
	assert.Equal(t, "Good", f.Rating)

	many := make([]models.Enquiry, 6)
	for i := range many {
		many[i] = models.Enquiry{Date: testNow.AddDate(0, 0, -i-1)}
	}
	assert.Equal(t, "High", inquiryFactor(many, testNow).Rating)
}

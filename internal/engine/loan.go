// internal/engine/loan.go
package engine

import "math"

const (
	approvalFloor   = 10
	approvalCeiling = 95
)

type EligibleBank struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

type LoanQuote struct {
	ApprovalProbability int            `json:"approvalProbability"`
	InterestRate        float64        `json:"interestRate"`
	TenureMonths        int            `json:"tenureMonths"`
	EMI                 float64        `json:"emi"`
	TotalPayable        float64        `json:"totalPayable"`
	TotalInterest       float64        `json:"totalInterest"`
	EligibleBanks       []EligibleBank `json:"eligibleBanks"`
	Recommendations     []string       `json:"recommendations"`
}

// CalculateLoan quotes a requested loan against the current score and factor
// state. tenureMonths of 0 picks the per-type default.
func CalculateLoan(tables LoanTables, score int, loanType string, amount float64, tenureMonths int, f FactorSet) LoanQuote {
	base := clampF(float64(score-300)/6, approvalFloor, approvalCeiling)

	// Unknown loan types quote as personal.
	typeAdj, ok := tables.TypeAdjustments[loanType]
	if !ok {
		typeAdj = tables.TypeAdjustments["personal"]
	}

	utilPenalty := 0.0
	switch util := f.CreditUtilization.Percentage; {
	case util > 70:
		utilPenalty = -20
	case util > 50:
		utilPenalty = -10
	case util > 30:
		utilPenalty = -5
	}

	amountPenalty := 0.0
	switch {
	case amount > 1000000:
		amountPenalty = -10
	case amount > 500000:
		amountPenalty = -5
	}

	approval := int(math.Round(clampF(base+typeAdj+utilPenalty+amountPenalty, approvalFloor, approvalCeiling)))

	rate, ok := tables.BaseRates[loanType]
	if !ok {
		rate = tables.BaseRates["personal"]
	}
	switch {
	case score >= 800:
		rate -= 2
	case score >= 750:
		rate -= 1
	case score < 650:
		rate += 2
	case score < 700:
		rate += 1
	}

	if tenureMonths <= 0 {
		if loanType == "home" {
			tenureMonths = tables.HomeTenure
		} else {
			tenureMonths = tables.DefaultTenure
		}
	}

	emi := amortizedEMI(amount, rate, tenureMonths)
	totalPayable := round2(emi * float64(tenureMonths))
	totalInterest := round2(totalPayable - amount)

	eligible := []EligibleBank{}
	for _, l := range tables.Lenders {
		if score >= l.MinScore {
			eligible = append(eligible, EligibleBank{Name: l.Name, Rate: l.Rate})
		}
	}

	return LoanQuote{
		ApprovalProbability: approval,
		InterestRate:        rate,
		TenureMonths:        tenureMonths,
		EMI:                 emi,
		TotalPayable:        totalPayable,
		TotalInterest:       totalInterest,
		EligibleBanks:       eligible,
		Recommendations:     loanRecommendations(approval, score, f),
	}
}

// amortizedEMI computes the fixed installment P*r*(1+r)^n / ((1+r)^n - 1)
// with r the monthly rate. A zero rate degrades to straight division.
func amortizedEMI(principal, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	r := annualRate / 12 / 100
	if r == 0 {
		return round2(principal / float64(months))
	}
	growth := math.Pow(1+r, float64(months))
	return round2(principal * r * growth / (growth - 1))
}

func loanRecommendations(approval, score int, f FactorSet) []string {
	recs := []string{}
	if f.CreditUtilization.Percentage > 30 {
		recs = append(recs, "Reduce credit utilization below 30% before applying to improve approval odds.")
	}
	if f.RecentInquiries.Count > 2 {
		recs = append(recs, "Avoid applying with multiple lenders at once; every enquiry shaves points off your score.")
	}
	if approval < 50 {
		recs = append(recs, "Approval odds are low right now. Waiting 3-6 months while improving your score is usually cheaper than a rejection.")
	}
	if score < 650 {
		recs = append(recs, "A co-applicant or collateral-backed product can offset a below-prime score.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Your profile is strong. Compare offers from all eligible lenders before committing.")
	}
	return recs
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// internal/engine/tables.go
package engine

// Lender is one row of the fixed eligibility table.
type Lender struct {
	Name     string  `json:"name"`
	MinScore int     `json:"minScore"`
	Rate     float64 `json:"rate"`
}

// LoanTables bundles the immutable lookup data the loan calculator consumes:
// base rates and approval adjustments per loan type, default tenures, and the
// lender eligibility list. Kept as one tagged struct so deployments can swap
// the tables without touching the formulas.
type LoanTables struct {
	BaseRates       map[string]float64 `json:"baseRates"`
	TypeAdjustments map[string]float64 `json:"typeAdjustments"`
	DefaultTenure   int                `json:"defaultTenure"`
	HomeTenure      int                `json:"homeTenure"`
	Lenders         []Lender           `json:"lenders"`
}

// DefaultLoanTables returns the production table set.
func DefaultLoanTables() LoanTables {
	return LoanTables{
		BaseRates: map[string]float64{
			"personal":  12.5,
			"home":      8.5,
			"auto":      9.5,
			"gold":      10.5,
			"education": 8.0,
		},
		TypeAdjustments: map[string]float64{
			"personal":  0,
			"home":      -5,
			"auto":      -3,
			"gold":      10,
			"education": -2,
		},
		DefaultTenure: 60,
		HomeTenure:    240,
		Lenders: []Lender{
			{Name: "HDFC Bank", MinScore: 750, Rate: 10.5},
			{Name: "ICICI Bank", MinScore: 720, Rate: 10.75},
			{Name: "State Bank of India", MinScore: 700, Rate: 11.0},
			{Name: "Axis Bank", MinScore: 700, Rate: 11.25},
			{Name: "Kotak Mahindra Bank", MinScore: 680, Rate: 11.5},
			{Name: "IDFC First Bank", MinScore: 650, Rate: 12.0},
			{Name: "Bajaj Finserv", MinScore: 630, Rate: 13.0},
			{Name: "Tata Capital", MinScore: 600, Rate: 13.5},
		},
	}
}

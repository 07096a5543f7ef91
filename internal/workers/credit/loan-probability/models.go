// internal/workers/credit/loan-probability/models.go
package loanprobability

import (
	"credit-workers/internal/engine"
	"credit-workers/internal/models"
)

type Input struct {
	ClientID     string                       `json:"clientId"`
	CreditReport *models.CreditReportSnapshot `json:"creditReport,omitempty"`
	LoanType     string                       `json:"loanType"`
	Amount       float64                      `json:"amount"`
	TenureMonths int                          `json:"tenureMonths,omitempty"`
}

type Output struct {
	LoanType string `json:"loanType"`
	engine.LoanQuote
}

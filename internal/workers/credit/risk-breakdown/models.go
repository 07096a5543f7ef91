// internal/workers/credit/risk-breakdown/models.go
package riskbreakdown

import (
	"credit-workers/internal/engine"
	"credit-workers/internal/models"
)

type Input struct {
	ClientID     string                       `json:"clientId"`
	CreditReport *models.CreditReportSnapshot `json:"creditReport,omitempty"`
}

type Output struct {
	OverallRisk string                       `json:"overallRisk"`
	RiskScore   float64                      `json:"riskScore"`
	Breakdown   map[string]engine.RiskFactor `json:"breakdown"`
	CreditScore int                          `json:"creditScore"`
}

// internal/workers/credit/score-whatif/models.go
package scorewhatif

import (
	"credit-workers/internal/engine"
	"credit-workers/internal/models"
)

type Input struct {
	ClientID     string                       `json:"clientId"`
	CreditReport *models.CreditReportSnapshot `json:"creditReport,omitempty"`
	Scenarios    []engine.Scenario            `json:"scenarios,omitempty"`
}

type Output struct {
	Scenarios []engine.ScenarioResult `json:"scenarios"`
}

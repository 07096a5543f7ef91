// internal/workers/credit/score-predict/models.go
package scorepredict

import (
	"credit-workers/internal/engine"
	"credit-workers/internal/models"
)

type Input struct {
	ClientID     string                       `json:"clientId"`
	CreditReport *models.CreditReportSnapshot `json:"creditReport,omitempty"`
}

type Output struct {
	PredictionID string `json:"predictionId"`
	GeneratedAt  string `json:"generatedAt"`
	engine.PredictResult
}

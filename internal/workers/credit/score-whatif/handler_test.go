// internal/workers/credit/score-whatif/handler_test.go
package scorewhatif

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"credit-workers/internal/common/logger"
	"credit-workers/internal/common/store"
	"credit-workers/internal/engine"
	"credit-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	eng := engine.New(engine.Config{ModelVersion: "heuristic-v2.1"}, rand.New(rand.NewSource(1)))
	reports := store.NewReportStore(db, rdb, 15*time.Minute)

	return NewHandler(&Config{Timeout: 10 * time.Second}, eng, reports, logger.NewTest(t))
}

func testReport(score int) *models.CreditReportSnapshot {
	return &models.CreditReportSnapshot{ClientID: "client-42", CreditScore: score}
}

func intPtr(v int) *int { return &v }

func TestHandler_Execute_CustomScenarios(t *testing.T) {
	handler := newTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		CreditReport: testReport(650),
		Scenarios: []engine.Scenario{
			{Name: "Pay down cards", UtilizationChange: intPtr(-30)},
			{Name: "Max out cards", UtilizationChange: intPtr(40)},
		},
	})

	require.NoError(t, err)
	require.Len(t, output.Scenarios, 2)

	assert.Equal(t, "Pay down cards", output.Scenarios[0].Scenario)
	assert.Equal(t, 675, output.Scenarios[0].ProjectedScore)
	assert.Equal(t, "Positive", output.Scenarios[0].Impact)

	assert.Equal(t, "Max out cards", output.Scenarios[1].Scenario)
	assert.Equal(t, 635, output.Scenarios[1].ProjectedScore)
	assert.Equal(t, "Negative", output.Scenarios[1].Impact)
}

func TestHandler_Execute_DefaultScenarios(t *testing.T) {
	handler := newTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		CreditReport: testReport(700),
	})

	require.NoError(t, err)
	assert.Len(t, output.Scenarios, 4)
	assert.Equal(t, "Pay off all credit cards", output.Scenarios[0].Scenario)
	assert.Equal(t, 725, output.Scenarios[0].ProjectedScore)
}

func TestHandler_Execute_InvalidReport(t *testing.T) {
	handler := newTestHandler(t)

	_, err := handler.Execute(context.Background(), &Input{
		CreditReport: &models.CreditReportSnapshot{ClientID: "client-42", CreditScore: 120},
	})

	var verr *engine.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "creditScore", verr.Field)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "REPORT_VALIDATION_FAILED", errorCode(&engine.ValidationError{Field: "creditScore", Reason: "bad"}))
	assert.Equal(t, "REPORT_NOT_FOUND", errorCode(store.ErrReportNotFound))
	assert.Equal(t, "SCENARIO_EVAL_FAILED", errorCode(assert.AnError))
}

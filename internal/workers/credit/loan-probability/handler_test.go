// internal/workers/credit/loan-probability/handler_test.go
package loanprobability

import (
	"context"
	"encoding/json"
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

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	eng := engine.New(engine.Config{ModelVersion: "heuristic-v2.1"}, rand.New(rand.NewSource(1)))
	reports := store.NewReportStore(db, rdb, 15*time.Minute)

	return NewHandler(&Config{Timeout: 10 * time.Second}, eng, reports, logger.NewTest(t)), mock
}

func primeBorrowerReport() *models.CreditReportSnapshot {
	return &models.CreditReportSnapshot{
		ClientID:    "client-42",
		CreditScore: 820,
		Accounts: []models.Account{
			{AccountType: "credit_card", CreditLimit: 500000, CurrentBalance: 100000, PaymentHistoryCode: "000000"},
		},
	}
}

func TestHandler_Execute_PrimeBorrower(t *testing.T) {
	handler, _ := newTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		CreditReport: primeBorrowerReport(),
		LoanType:     "personal",
		Amount:       100000,
	})

	require.NoError(t, err)
	assert.Equal(t, "personal", output.LoanType)
	assert.Equal(t, 87, output.ApprovalProbability)
	assert.Equal(t, 10.5, output.InterestRate)
	assert.Equal(t, 60, output.TenureMonths)
	assert.Greater(t, output.EMI, 0.0)
	assert.InDelta(t, output.EMI*60, output.TotalPayable, 1)
	assert.Len(t, output.EligibleBanks, 8, "a 820 score clears every lender")
}

func TestHandler_Execute_HomeLoanTenure(t *testing.T) {
	handler, _ := newTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		CreditReport: primeBorrowerReport(),
		LoanType:     "home",
		Amount:       3000000,
	})

	require.NoError(t, err)
	assert.Equal(t, 240, output.TenureMonths)
}

func TestHandler_Execute_DefaultsToPersonal(t *testing.T) {
	handler, _ := newTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		CreditReport: primeBorrowerReport(),
		Amount:       100000,
	})

	require.NoError(t, err)
	assert.Equal(t, "personal", output.LoanType)
}

func TestHandler_Execute_FetchesReportFromStore(t *testing.T) {
	handler, dbMock := newTestHandler(t)

	raw, _ := json.Marshal(primeBorrowerReport())
	dbMock.ExpectQuery("SELECT report").
		WithArgs("client-42").
		WillReturnRows(sqlmock.NewRows([]string{"report"}).AddRow(raw))

	output, err := handler.Execute(context.Background(), &Input{
		ClientID: "client-42",
		LoanType: "auto",
		Amount:   400000,
	})

	require.NoError(t, err)
	assert.Equal(t, "auto", output.LoanType)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestHandler_Execute_InvalidAmount(t *testing.T) {
	handler, _ := newTestHandler(t)

	_, err := handler.Execute(context.Background(), &Input{
		CreditReport: primeBorrowerReport(),
		LoanType:     "personal",
		Amount:       0,
	})

	var verr *engine.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "REPORT_VALIDATION_FAILED", errorCode(&engine.ValidationError{Field: "amount", Reason: "must be positive"}))
	assert.Equal(t, "REPORT_NOT_FOUND", errorCode(store.ErrReportNotFound))
	assert.Equal(t, "LOAN_ELIGIBILITY_FAILED", errorCode(assert.AnError))
}

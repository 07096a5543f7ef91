// internal/common/errors/errors_test.go
package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *StandardError
		code      ErrorCode
		retryable bool
	}{
		{"validation", NewReportValidationError("creditScore out of range"), ErrCodeReportValidationFailed, false},
		{"not found", NewReportNotFoundError("client-42"), ErrCodeReportNotFound, false},
		{"fetch failed", NewReportFetchFailedError(errors.New("connection refused")), ErrCodeReportFetchFailed, true},
		{"prediction", NewPredictionFailedError(errors.New("boom")), ErrCodePredictionFailed, false},
		{"scenario", NewScenarioEvalFailedError(errors.New("boom")), ErrCodeScenarioEvalFailed, false},
		{"risk", NewRiskBreakdownFailedError(errors.New("boom")), ErrCodeRiskBreakdownFailed, false},
		{"loan", NewLoanEligibilityFailedError(errors.New("boom")), ErrCodeLoanEligibilityFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.NotEmpty(t, tt.err.Message)
			assert.False(t, tt.err.Timestamp.IsZero())
			assert.Contains(t, tt.err.Error(), string(tt.code))
		})
	}
}

func TestGetRetryCount(t *testing.T) {
	assert.Equal(t, 3, GetRetryCount(ErrCodeReportFetchFailed))
	assert.Equal(t, 0, GetRetryCount(ErrCodeReportValidationFailed))
	assert.Equal(t, 0, GetRetryCount(ErrCodePredictionFailed))

	assert.True(t, IsRetryableErrorCode(ErrCodeReportFetchFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeParseError))
}

func TestConvertToBPMNError(t *testing.T) {
	stdErr := NewReportFetchFailedError(errors.New("connection refused"))

	bpmnErr := ConvertToBPMNError(stdErr)

	assert.Equal(t, "REPORT_FETCH_FAILED", bpmnErr.Code)
	assert.Equal(t, 3, bpmnErr.Retries)
	assert.True(t, bpmnErr.Retryable)
	assert.Equal(t, "REPORT_FETCH_FAILED", bpmnErr.ErrorVariables["originalErrorCode"])

	vars := bpmnErr.ToErrorVariables()
	assert.Equal(t, "REPORT_FETCH_FAILED", vars["errorCode"])
	assert.Equal(t, true, vars["retryable"])
}

func TestConvertToBPMNError_NonRetryableGetsNoRetries(t *testing.T) {
	bpmnErr := ConvertToBPMNError(NewReportValidationError("bad input"))

	assert.Equal(t, "REPORT_VALIDATION_FAILED", bpmnErr.Code)
	assert.Equal(t, 0, bpmnErr.Retries)
	assert.False(t, bpmnErr.Retryable)
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "REPORT", GetErrorCategory(ErrCodeReportNotFound))
	assert.Equal(t, "LOAN", GetErrorCategory(ErrCodeLoanEligibilityFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeParseError))
	assert.Equal(t, "SCORING", GetErrorCategory(ErrCodePredictionFailed))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrorCode("SOMETHING_ELSE")))
}

// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeReportValidationFailed ErrorCode = "REPORT_VALIDATION_FAILED"
	ErrCodeReportNotFound         ErrorCode = "REPORT_NOT_FOUND"
	ErrCodeReportFetchFailed      ErrorCode = "REPORT_FETCH_FAILED"

	ErrCodePredictionFailed      ErrorCode = "PREDICTION_FAILED"
	ErrCodeScenarioEvalFailed    ErrorCode = "SCENARIO_EVAL_FAILED"
	ErrCodeRiskBreakdownFailed   ErrorCode = "RISK_BREAKDOWN_FAILED"
	ErrCodeLoanEligibilityFailed ErrorCode = "LOAN_ELIGIBILITY_FAILED"

	ErrCodeParseError ErrorCode = "PARSE_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewReportValidationError creates a non-retryable input validation error.
func NewReportValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportValidationFailed,
		Message:   "Credit report input failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReportNotFoundError creates a non-retryable missing-report error.
func NewReportNotFoundError(clientID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportNotFound,
		Message:   "No credit report found for client",
		Details:   fmt.Sprintf("clientId: %s", clientID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReportFetchFailedError creates a retryable storage error.
func NewReportFetchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportFetchFailed,
		Message:   "Failed to load credit report from storage",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPredictionFailedError creates a non-retryable scoring error.
func NewPredictionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePredictionFailed,
		Message:   "Score projection failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewScenarioEvalFailedError creates a non-retryable what-if error.
func NewScenarioEvalFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeScenarioEvalFailed,
		Message:   "Scenario evaluation failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRiskBreakdownFailedError creates a non-retryable risk decomposition error.
func NewRiskBreakdownFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRiskBreakdownFailed,
		Message:   "Risk factor breakdown failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLoanEligibilityFailedError creates a non-retryable loan quote error.
func NewLoanEligibilityFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLoanEligibilityFailed,
		Message:   "Loan eligibility calculation failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes (same as internal).
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeReportValidationFailed: "REPORT_VALIDATION_FAILED",
	ErrCodeReportNotFound:         "REPORT_NOT_FOUND",
	ErrCodeReportFetchFailed:      "REPORT_FETCH_FAILED",
	ErrCodePredictionFailed:       "PREDICTION_FAILED",
	ErrCodeScenarioEvalFailed:     "SCENARIO_EVAL_FAILED",
	ErrCodeRiskBreakdownFailed:    "RISK_BREAKDOWN_FAILED",
	ErrCodeLoanEligibilityFailed:  "LOAN_ELIGIBILITY_FAILED",
	ErrCodeParseError:             "PARSE_ERROR",
}

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeReportFetchFailed:
		return 3 // Retryable storage errors
	default:
		return 0 // Validation/business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code) // Fallback
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "REPORT"):
		return "REPORT"
	case strings.Contains(codeStr, "LOAN"):
		return "LOAN"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "PARSE"):
		return "VALIDATION"
	case strings.Contains(codeStr, "PREDICTION") || strings.Contains(codeStr, "SCENARIO") || strings.Contains(codeStr, "RISK"):
		return "SCORING"
	default:
		return "OTHER"
	}
}

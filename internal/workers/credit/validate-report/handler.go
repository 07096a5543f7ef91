// internal/workers/credit/validate-report/handler.go
package validatereport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	stderrors "credit-workers/internal/common/errors"
	"credit-workers/internal/common/logger"
	"credit-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/xeipuuv/gojsonschema"
)

const (
	TaskType = "validate-report"
)

// reportSchema is the contract the bureau ingest must satisfy before any
// scoring runs. Accounts and enquiries are allowed to be sparse; only the
// top-level shape and the score range are enforced here.
const reportSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["clientId", "creditScore"],
  "properties": {
    "clientId": {"type": "string", "minLength": 1},
    "creditScore": {"type": "integer", "minimum": 300, "maximum": 900},
    "accounts": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "accountType": {"type": "string"},
          "dateOpened": {"type": "string"},
          "creditLimit": {"type": "number", "minimum": 0},
          "highCredit": {"type": "number", "minimum": 0},
          "currentBalance": {"type": "number"},
          "paymentHistoryCode": {"type": "string"}
        }
      }
    },
    "enquiries": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "date": {"type": "string"},
          "purpose": {"type": "string"},
          "amount": {"type": "number"}
        }
      }
    }
  }
}`

type Handler struct {
	config *Config
	schema *gojsonschema.Schema
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) (*Handler, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(reportSchema))
	if err != nil {
		return nil, fmt.Errorf("compile report schema: %w", err)
	}
	return &Handler{
		config: config,
		schema: schema,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, string(stderrors.ErrCodeParseError), fmt.Sprintf("parse input: %v", err))
		return
	}

	output, err := h.execute(&input)
	if err != nil {
		h.failJob(client, job, string(stderrors.ErrCodeReportValidationFailed), err.Error())
		return
	}

	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

// execute returns a structured verdict rather than throwing: downstream
// gateways branch on valid, they do not handle BPMN errors for bad reports.
func (h *Handler) execute(input *Input) (*Output, error) {
	if len(input.CreditReport) == 0 {
		return &Output{Valid: false, Errors: []string{"creditReport: is missing"}}, nil
	}

	result, err := h.schema.Validate(gojsonschema.NewBytesLoader(input.CreditReport))
	if err != nil {
		return &Output{Valid: false, Errors: []string{fmt.Sprintf("creditReport: %v", err)}}, nil
	}

	if result.Valid() {
		return &Output{Valid: true, Errors: []string{}}, nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}

	h.logger.Warn("report failed validation", map[string]interface{}{
		"errorCount": len(errs),
	})

	return &Output{Valid: false, Errors: errs}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err = cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errCode,
		"errorMessage": errorMessage,
	})
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errCode).Inc()

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(input *Input) (*Output, error) {
	return h.execute(input)
}

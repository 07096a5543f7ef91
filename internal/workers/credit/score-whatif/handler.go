// internal/workers/credit/score-whatif/handler.go
package scorewhatif

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	stderrors "credit-workers/internal/common/errors"
	"credit-workers/internal/common/logger"
	"credit-workers/internal/common/metrics"
	"credit-workers/internal/common/store"
	"credit-workers/internal/engine"
	"credit-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "score-whatif"
)

type Handler struct {
	config  *Config
	engine  *engine.Engine
	reports *store.ReportStore
	logger  logger.Logger
}

func NewHandler(config *Config, eng *engine.Engine, reports *store.ReportStore, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		engine:  eng,
		reports: reports,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
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

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, errorCode(err), err.Error())
		return
	}

	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	report, err := h.resolveReport(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := h.engine.WhatIf(report, input.Scenarios)
	if err != nil {
		return nil, err
	}

	h.logger.Info("scenarios evaluated", map[string]interface{}{
		"clientId":     report.ClientID,
		"currentScore": report.CreditScore,
		"scenarios":    len(result.Scenarios),
	})

	return &Output{Scenarios: result.Scenarios}, nil
}

func (h *Handler) resolveReport(ctx context.Context, input *Input) (*models.CreditReportSnapshot, error) {
	if input.CreditReport != nil {
		return input.CreditReport, nil
	}
	if input.ClientID == "" {
		return nil, &engine.ValidationError{Field: "clientId", Reason: "is missing"}
	}
	return h.reports.Get(ctx, input.ClientID)
}

func errorCode(err error) string {
	var verr *engine.ValidationError
	switch {
	case errors.As(err, &verr):
		return string(stderrors.ErrCodeReportValidationFailed)
	case errors.Is(err, store.ErrReportNotFound):
		return string(stderrors.ErrCodeReportNotFound)
	default:
		return string(stderrors.ErrCodeScenarioEvalFailed)
	}
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

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

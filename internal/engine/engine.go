// internal/engine/engine.go

// Package engine implements the credit-risk scoring and projection engine:
// factor extraction, score trajectory simulation, what-if evaluation, risk
// decomposition and loan eligibility. Despite the "prediction model" naming
// elsewhere in the product, this is a deterministic rule-and-regression
// formula set with a single stochastic term in the projection; everything is
// plain inspectable functions over constant tables.
//
// The engine is stateless and side-effect-free. Apart from the guarded random
// source used by the projection, every operation is a pure function of its
// arguments, so a single Engine is safe to share across concurrent jobs.
package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"credit-workers/internal/models"
)

// Config carries the engine's immutable configuration.
type Config struct {
	ModelVersion string
	Tables       LoanTables
}

// Engine exposes the four scoring operations. The random source is injected
// and seedable so tests can pin exact trajectories; access to it is
// serialized because handlers run jobs concurrently.
type Engine struct {
	cfg Config
	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// New builds an engine. A nil rng gets a time-seeded source; pass a seeded
// rand.New(rand.NewSource(n)) to make projections reproducible.
func New(cfg Config, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Tables.BaseRates == nil {
		cfg.Tables = DefaultLoanTables()
	}
	return &Engine{cfg: cfg, now: time.Now, rng: rng}
}

// ValidationError rejects malformed top-level input before any factor math
// runs. Irregular nested data never produces one; it degrades to the
// documented neutral defaults instead.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid credit report: %s %s", e.Field, e.Reason)
}

func validateSnapshot(snap *models.CreditReportSnapshot) error {
	if snap == nil {
		return &ValidationError{Field: "creditReport", Reason: "is missing"}
	}
	if snap.ClientID == "" {
		return &ValidationError{Field: "clientId", Reason: "is missing"}
	}
	if snap.CreditScore < scoreFloor || snap.CreditScore > scoreCeiling {
		return &ValidationError{Field: "creditScore", Reason: fmt.Sprintf("must be within [%d,%d]", scoreFloor, scoreCeiling)}
	}
	return nil
}

type PredictResult struct {
	CurrentScore         int                  `json:"currentScore"`
	Predictions          []Prediction         `json:"predictions"`
	TargetScore          int                  `json:"targetScore"`
	ImprovementPotential ImprovementPotential `json:"improvementPotential"`
	Recommendations      []Recommendation     `json:"recommendations"`
	Factors              FactorSet            `json:"factors"`
	ModelVersion         string               `json:"modelVersion"`
}

// Predict derives factors from the snapshot and projects the six-month score
// trajectory with improvement potential and recommendations.
func (e *Engine) Predict(snap *models.CreditReportSnapshot) (*PredictResult, error) {
	if err := validateSnapshot(snap); err != nil {
		return nil, err
	}

	factors := ExtractFactors(snap, e.now())
	potential := EstimateImprovement(factors)

	e.mu.Lock()
	predictions := Project(snap.CreditScore, potential.MonthlyGain, e.rng)
	e.mu.Unlock()

	return &PredictResult{
		CurrentScore:         snap.CreditScore,
		Predictions:          predictions,
		TargetScore:          predictions[len(predictions)-1].Score,
		ImprovementPotential: potential,
		Recommendations:      Recommend(factors),
		Factors:              factors,
		ModelVersion:         e.cfg.ModelVersion,
	}, nil
}

type WhatIfResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
}

// WhatIf evaluates the supplied scenarios against the current score, falling
// back to the default set when none are given.
func (e *Engine) WhatIf(snap *models.CreditReportSnapshot, scenarios []Scenario) (*WhatIfResult, error) {
	if err := validateSnapshot(snap); err != nil {
		return nil, err
	}
	return &WhatIfResult{Scenarios: EvaluateScenarios(snap.CreditScore, scenarios)}, nil
}

// RiskFactors decomposes overall risk into the five weighted contributors.
func (e *Engine) RiskFactors(snap *models.CreditReportSnapshot) (*RiskBreakdown, error) {
	if err := validateSnapshot(snap); err != nil {
		return nil, err
	}
	breakdown := DecomposeRisk(snap.CreditScore, ExtractFactors(snap, e.now()))
	return &breakdown, nil
}

// LoanProbability quotes a requested loan against the snapshot.
func (e *Engine) LoanProbability(snap *models.CreditReportSnapshot, loanType string, amount float64, tenureMonths int) (*LoanQuote, error) {
	if err := validateSnapshot(snap); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	quote := CalculateLoan(e.cfg.Tables, snap.CreditScore, loanType, amount, tenureMonths, ExtractFactors(snap, e.now()))
	return &quote, nil
}

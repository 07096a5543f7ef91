// internal/engine/projection.go
package engine

import (
	"math"
	"math/rand"
)

const (
	projectionMonths = 6

	scoreFloor   = 300
	scoreCeiling = 900

	confidenceFloor = 50
)

type Prediction struct {
	Month      int        `json:"month"`
	Score      int        `json:"score"`
	Change     int        `json:"change"`
	Confidence int        `json:"confidence"`
	Range      ScoreRange `json:"range"`
}

type ScoreRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Project simulates a six-month score trajectory. Each month mixes the
// deterministic monthly gain with Gaussian noise whose spread shrinks as the
// horizon nears, damped by a diminishing-returns factor. The caller owns the
// random source so trajectories can be pinned under a fixed seed.
func Project(currentScore, monthlyGain int, rng *rand.Rand) []Prediction {
	predictions := make([]Prediction, 0, projectionMonths)
	prev := currentScore

	for month := 1; month <= projectionMonths; month++ {
		stdev := math.Max(2, float64(10-month))
		noise := gaussian(rng) * stdev
		diminishing := 1 - float64(month)*0.05

		raw := (float64(monthlyGain) + noise) * diminishing
		score := int(math.Round(clampScore(float64(prev) + raw)))

		confidence := 95 - month*5
		if confidence < confidenceFloor {
			confidence = confidenceFloor
		}

		band := 10 - month
		low := score - band
		if low < scoreFloor {
			low = scoreFloor
		}
		high := score + band
		if high > scoreCeiling {
			high = scoreCeiling
		}

		predictions = append(predictions, Prediction{
			Month:      month,
			Score:      score,
			Change:     score - currentScore,
			Confidence: confidence,
			Range:      ScoreRange{Low: low, High: high},
		})
		prev = score
	}

	return predictions
}

// gaussian draws a standard normal variate via the Box-Muller transform.
func gaussian(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func clampScore(v float64) float64 {
	if v < scoreFloor {
		return scoreFloor
	}
	if v > scoreCeiling {
		return scoreCeiling
	}
	return v
}

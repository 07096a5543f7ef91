// internal/engine/projection_test.go
package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_FixedSeedIsReproducible(t *testing.T) {
	a := Project(650, 5, rand.New(rand.NewSource(42)))
	b := Project(650, 5, rand.New(rand.NewSource(42)))

	assert.Equal(t, a, b)

	c := Project(650, 5, rand.New(rand.NewSource(43)))
	assert.NotEqual(t, a, c, "different seeds should diverge")
}

func TestProject_Shape(t *testing.T) {
	preds := Project(650, 5, rand.New(rand.NewSource(1)))

	assert.Len(t, preds, 6)

	prevConfidence := 100
	for i, p := range preds {
		assert.Equal(t, i+1, p.Month)
		assert.GreaterOrEqual(t, p.Score, 300)
		assert.LessOrEqual(t, p.Score, 900)
		assert.Equal(t, p.Score-650, p.Change)

		assert.LessOrEqual(t, p.Confidence, prevConfidence)
		assert.GreaterOrEqual(t, p.Confidence, 50)
		assert.Equal(t, 95-5*p.Month, p.Confidence)
		prevConfidence = p.Confidence

		band := 10 - p.Month
		assert.Equal(t, p.Score-band, p.Range.Low)
		assert.Equal(t, p.Score+band, p.Range.High)
		assert.LessOrEqual(t, p.Range.Low, p.Score)
		assert.GreaterOrEqual(t, p.Range.High, p.Score)
	}
}

func TestProject_ClampsAtCeiling(t *testing.T) {
	preds := Project(898, 50, rand.New(rand.NewSource(7)))

	for _, p := range preds {
		assert.LessOrEqual(t, p.Score, 900)
		assert.LessOrEqual(t, p.Range.High, 900)
	}
	assert.Equal(t, 900, preds[5].Range.High, "band is capped at the ceiling")
}

func TestProject_ClampsAtFloor(t *testing.T) {
	preds := Project(302, -80, rand.New(rand.NewSource(7)))

	for _, p := range preds {
		assert.GreaterOrEqual(t, p.Score, 300)
		assert.GreaterOrEqual(t, p.Range.Low, 300)
	}
}

func TestGaussian_Distribution(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	sum := 0.0
	n := 10000
	for i := 0; i < n; i++ {
		v := gaussian(rng)
		sum += v
		assert.False(t, v != v, "gaussian must never be NaN")
	}

	// Sample mean of a standard normal should sit near zero.
	assert.InDelta(t, 0, sum/float64(n), 0.1)
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cypherlabdev/edge-pipeline-service/internal/models"
)

// TestLogisticModel_ProbabilityBounds tests that predictions stay in [0,1]
func TestLogisticModel_ProbabilityBounds(t *testing.T) {
	m := NewLogisticModel()

	for _, hf := range []float64{-10, -1, 0, 0.03, 1, 10} {
		p := m.PredictProba(Features{"bias": 1.0, "home_field": hf})
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

// TestLogisticModel_HomeFieldLeansHome tests that a positive home-field scalar
// produces a probability above a coin flip
func TestLogisticModel_HomeFieldLeansHome(t *testing.T) {
	m := NewLogisticModel()

	feats := BuildFeatures(models.Game{HomeField: 0.03})
	p := m.PredictProba(feats)

	assert.Greater(t, p, 0.5)
	assert.Less(t, p, 0.55, "stub model should stay close to a coin flip")
}

// TestBuildFeatures tests the stub feature set
func TestBuildFeatures(t *testing.T) {
	feats := BuildFeatures(models.Game{HomeField: 0.03})

	assert.Equal(t, 1.0, feats["bias"])
	assert.Equal(t, 0.03, feats["home_field"])
}

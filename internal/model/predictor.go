// Package model holds the probability-model collaborator. The pipeline only
// depends on the Predictor contract; the logistic stand-in here exists so the
// system runs end to end until a trained model replaces it.
package model

import (
	"math"

	"github.com/cypherlabdev/edge-pipeline-service/internal/models"
)

// Features is the opaque game context handed to a probability model. The
// pipeline never inspects it.
type Features map[string]float64

// Predictor estimates a home-team win probability in [0,1] from features.
type Predictor interface {
	PredictProba(feats Features) float64
}

// BuildFeatures assembles the feature set for a game. Stub: today the only
// signal is the home-field-advantage scalar plus a bias term.
func BuildFeatures(g models.Game) Features {
	return Features{
		"bias":       1.0,
		"home_field": g.HomeField,
	}
}

// LogisticModel is a linear-logistic stand-in with fixed weights.
type LogisticModel struct {
	weights Features
}

// NewLogisticModel returns the v1 stand-in model.
func NewLogisticModel() *LogisticModel {
	return &LogisticModel{
		weights: Features{
			"bias":       0.0,
			"home_field": 1.0,
		},
	}
}

// PredictProba returns sigmoid(w·x), clamped to [0,1].
func (m *LogisticModel) PredictProba(feats Features) float64 {
	z := 0.0
	for name, w := range m.weights {
		z += w * feats[name]
	}

	p := 1.0 / (1.0 + math.Exp(-z))
	return math.Max(0.0, math.Min(1.0, p))
}

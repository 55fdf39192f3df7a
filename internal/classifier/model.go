package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// ErrModelUnavailable means no usable model artifact could be loaded and
// no fallback is permitted. The process must not serve scoring requests in
// that state.
var ErrModelUnavailable = errors.New("classifier model unavailable")

// Model is a logistic-regression binary classifier persisted as a JSON
// artifact. The weight order is bound to the feature order declared by the
// assembler; the two must never drift apart.
type Model struct {
	Version      int       `json:"version"`
	FeatureCount int       `json:"feature_count"`
	Weights      []float64 `json:"weights"`
	Bias         float64   `json:"bias"`
	TrainedAt    time.Time `json:"trained_at"`
}

// Load reads a model artifact from disk. A missing file surfaces the
// underlying os error so callers can distinguish absent from corrupt; a
// file that parses but declares an inconsistent shape is corrupt.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: artifact %s does not parse: %v", ErrModelUnavailable, path, err)
	}
	if m.FeatureCount <= 0 || len(m.Weights) != m.FeatureCount {
		return nil, fmt.Errorf("%w: artifact %s declares %d features but carries %d weights",
			ErrModelUnavailable, path, m.FeatureCount, len(m.Weights))
	}
	return &m, nil
}

// Save writes the model artifact, creating the parent directory if needed.
func (m *Model) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create model directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize model: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write model artifact: %w", err)
	}
	return nil
}

// Score returns the probability of the positive class for a feature
// vector. The sigmoid keeps the result inside [0, 1] for any input.
func (m *Model) Score(features []float64) (float64, error) {
	if len(features) != m.FeatureCount {
		return 0, fmt.Errorf("feature vector has %d fields, model expects %d", len(features), m.FeatureCount)
	}

	z := m.Bias
	for i, w := range m.Weights {
		z += w * features[i]
	}
	return 1.0 / (1.0 + math.Exp(-z)), nil
}

// TrainSynthetic fits a placeholder model on random data with random
// labels. The result scores inside [0, 1] like a real model would but has
// no predictive semantics whatsoever. Demo mode only.
func TrainSynthetic(featureCount, samples int, seed int64) *Model {
	rng := rand.New(rand.NewSource(seed))

	m := &Model{
		Version:      1,
		FeatureCount: featureCount,
		Weights:      make([]float64, featureCount),
		TrainedAt:    time.Now().UTC(),
	}

	// A few epochs of SGD on uniformly random features and coin-flip
	// labels. Learning rate is small so the weights stay modest and the
	// sigmoid does not pin live scores to 0 or 1.
	const (
		epochs       = 5
		learningRate = 0.01
	)

	features := make([][]float64, samples)
	labels := make([]float64, samples)
	for i := range features {
		row := make([]float64, featureCount)
		for j := range row {
			row[j] = rng.Float64()
		}
		features[i] = row
		labels[i] = float64(rng.Intn(2))
	}

	for epoch := 0; epoch < epochs; epoch++ {
		for i, row := range features {
			z := m.Bias
			for j, w := range m.Weights {
				z += w * row[j]
			}
			predicted := 1.0 / (1.0 + math.Exp(-z))
			gradient := predicted - labels[i]
			for j := range m.Weights {
				m.Weights[j] -= learningRate * gradient * row[j]
			}
			m.Bias -= learningRate * gradient
		}
	}

	return m
}

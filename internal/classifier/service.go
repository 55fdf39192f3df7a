package classifier

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"go.uber.org/zap"
)

// Service wraps the loaded model behind the scoring contract. It is
// loaded once at startup and is safe for concurrent read-only use.
type Service struct {
	model *Model
	demo  bool
}

// NewService loads the model artifact, falling back to a synthetic
// placeholder when demo mode permits it. Availability over validity is a
// deliberate choice for demonstrations; with demoMode off, a missing or
// corrupt artifact is fatal.
func NewService(path string, featureCount int, demoMode bool, log *zap.Logger) (*Service, error) {
	model, err := Load(path)

	switch {
	case err == nil:
		if model.FeatureCount != featureCount {
			return nil, fmt.Errorf("%w: artifact expects %d features, assembler produces %d",
				ErrModelUnavailable, model.FeatureCount, featureCount)
		}
		log.Info("Classifier model loaded",
			zap.String("path", path),
			zap.Int("version", model.Version),
			zap.Time("trained_at", model.TrainedAt),
		)
		return &Service{model: model, demo: demoMode}, nil

	case demoMode:
		// Missing or corrupt artifact: train a placeholder so the service
		// never fails to start. The scores it produces mean nothing.
		log.Warn("Model artifact unusable, training synthetic placeholder. "+
			"Predictions carry no clinical meaning.",
			zap.String("path", path),
			zap.Error(err),
		)
		model = TrainSynthetic(featureCount, 100, time.Now().UnixNano())
		if saveErr := model.Save(path); saveErr != nil {
			return nil, fmt.Errorf("failed to persist placeholder model: %w", saveErr)
		}
		return &Service{model: model, demo: true}, nil

	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: no artifact at %s and demo mode is off", ErrModelUnavailable, path)

	default:
		return nil, err
	}
}

// Score returns the probability of the positive class for a feature vector.
func (s *Service) Score(features []float64) (float64, error) {
	return s.model.Score(features)
}

// DemoMode reports whether the service runs on a placeholder model.
func (s *Service) DemoMode() bool {
	return s.demo
}

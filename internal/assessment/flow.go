package assessment

import (
	"context"

	"github.com/AarazooSingh1506/autism-detction-system/internal/models"
	"github.com/AarazooSingh1506/autism-detction-system/internal/repository"

	"go.uber.org/zap"
)

// Scorer is the classifier boundary: given a feature vector, return the
// probability of the positive class.
type Scorer interface {
	Score(features []float64) (float64, error)
}

// Result is what the scoring step hands back to presentation.
type Result struct {
	RecordID   int               `json:"record_id"`
	Prediction float64           `json:"prediction"`
	Signal     models.GazeSignal `json:"gaze_data"`
}

// Flow executes the second step of an assessment: consume the staged
// answers, capture a gaze signal, assemble features, score, persist.
// One flow is one linear pass; there is no partial persistence, and any
// failure after consumption restores the staged answers for retry.
type Flow struct {
	log    *zap.Logger
	source SignalSource
	scorer Scorer
}

func NewFlow(log *zap.Logger, source SignalSource, scorer Scorer) *Flow {
	return &Flow{log: log, source: source, scorer: scorer}
}

// Run performs the scoring step for one user. The staged answers are
// cleared exactly once: on success they stay consumed, on failure they are
// put back so the caller can retry without re-entering the questionnaire.
func (f *Flow) Run(ctx context.Context, userID int, session SessionStore) (*Result, error) {
	answers, err := ConsumeAnswers(session)
	if err != nil {
		return nil, err
	}

	signal := f.source.Generate()

	features, err := AssembleFeatures(answers, signal)
	if err != nil {
		RestoreAnswers(session, answers)
		return nil, err
	}

	prediction, err := f.scorer.Score(features)
	if err != nil {
		RestoreAnswers(session, answers)
		return nil, err
	}

	record, err := repository.CreateAssessment(ctx, userID, answers, signal, prediction)
	if err != nil {
		RestoreAnswers(session, answers)
		return nil, err
	}

	f.log.Info("Assessment completed",
		zap.Int("user_id", userID),
		zap.Int("record_id", record.ID),
		zap.Float64("prediction", prediction),
	)

	return &Result{
		RecordID:   record.ID,
		Prediction: prediction,
		Signal:     signal,
	}, nil
}

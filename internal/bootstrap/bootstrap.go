package bootstrap

import (
	"context"
	"fmt"

	"github.com/AarazooSingh1506/autism-detction-system/internal/assessment"
	"github.com/AarazooSingh1506/autism-detction-system/internal/classifier"
	"github.com/AarazooSingh1506/autism-detction-system/internal/config"
	"github.com/AarazooSingh1506/autism-detction-system/internal/models"
	"github.com/AarazooSingh1506/autism-detction-system/internal/repository"

	"go.uber.org/zap"
)

// Run performs the one-time startup initialization: the admin account, the
// classifier artifact and the questionnaire definition. Idempotent, and
// every failure is reported instead of silently mutating disk state.
func Run(ctx context.Context, log *zap.Logger) (*classifier.Service, *models.Questionnaire, error) {
	if err := repository.EnsureAdmin(ctx, config.Conf.Admin.Username, config.Conf.Admin.Password); err != nil {
		return nil, nil, fmt.Errorf("failed to ensure admin account: %w", err)
	}

	scorer, err := classifier.NewService(
		config.Conf.Model.Path,
		assessment.FeatureCount,
		config.Conf.Model.DemoMode,
		log,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize classifier: %w", err)
	}
	if scorer.DemoMode() {
		log.Warn("Classifier running in demo mode; predictions are not clinically meaningful")
	}

	questionnaire, err := models.LoadQuestionnaire(config.Conf.Questions.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load questionnaire: %w", err)
	}

	return scorer, questionnaire, nil
}

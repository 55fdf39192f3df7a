package assessment

import (
	"context"
	"errors"
	"testing"

	"github.com/AarazooSingh1506/autism-detction-system/internal/database"
	"github.com/AarazooSingh1506/autism-detction-system/internal/models"
	"github.com/AarazooSingh1506/autism-detction-system/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupFlowDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Assessment{}))
	database.DB = db
}

type fixedScorer struct {
	probability float64
	err         error
}

func (s fixedScorer) Score(features []float64) (float64, error) {
	return s.probability, s.err
}

func TestFlowRunPersistsOneRecord(t *testing.T) {
	setupFlowDB(t)
	ctx := context.Background()

	user, err := repository.CreateUser(ctx, "carer1", "Sup3r-Secret!", models.RoleUser)
	require.NoError(t, err)

	session := newFakeSession()
	require.NoError(t, StageAnswers(session, validAnswers()))

	flow := NewFlow(zap.NewNop(), NewSeededSource(1), fixedScorer{probability: 0.33})
	result, err := flow.Run(ctx, user.ID, session)
	require.NoError(t, err)

	assert.Equal(t, 0.33, result.Prediction)
	assert.Greater(t, result.RecordID, 0)

	record, err := repository.LatestAssessmentFor(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, validAnswers(), record.AnswerSet())

	signal, err := record.GazeSignal()
	require.NoError(t, err)
	assert.Equal(t, result.Signal, signal)

	// Staging is cleared after a successful flow.
	_, err = ConsumeAnswers(session)
	assert.ErrorIs(t, err, ErrNoStagedData)
}

func TestFlowRunWithoutStagedAnswers(t *testing.T) {
	setupFlowDB(t)

	flow := NewFlow(zap.NewNop(), NewSeededSource(1), fixedScorer{probability: 0.5})
	_, err := flow.Run(context.Background(), 1, newFakeSession())
	require.ErrorIs(t, err, ErrNoStagedData)

	count, err := repository.CountAssessments(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestFlowRunScorerFailureRestoresStaging(t *testing.T) {
	setupFlowDB(t)
	ctx := context.Background()

	user, err := repository.CreateUser(ctx, "carer1", "Sup3r-Secret!", models.RoleUser)
	require.NoError(t, err)

	session := newFakeSession()
	staged := validAnswers()
	require.NoError(t, StageAnswers(session, staged))

	flow := NewFlow(zap.NewNop(), NewSeededSource(1), fixedScorer{err: errors.New("model exploded")})
	_, err = flow.Run(ctx, user.ID, session)
	require.Error(t, err)

	// No partial write, and the answers are back for a retry.
	count, err := repository.CountAssessments(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	got, err := ConsumeAnswers(session)
	require.NoError(t, err)
	assert.Equal(t, staged, got)
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/AarazooSingh1506/autism-detction-system/internal/database"
	"github.com/AarazooSingh1506/autism-detction-system/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB points the package at a fresh in-memory sqlite database.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and private.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Assessment{}))
	database.DB = db
}

func testUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := CreateUser(context.Background(), username, "Sup3r-Secret!", models.RoleUser)
	require.NoError(t, err)
	return user
}

func testAnswers() models.AnswerSet {
	return models.AnswerSet{
		Age:          4,
		Gender:       "male",
		Ethnicity:    "latino",
		Jaundice:     "no",
		AutismFamily: "yes",
	}
}

func testSignal() models.GazeSignal {
	return models.GazeSignal{
		Fixations:     14,
		Saccades:      22,
		PupilDilation: 3.1,
		Attention:     models.AttentionAreas{Eyes: 60, Mouth: 25, Objects: 15},
	}
}

func TestCreateAssessmentRoundTrip(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := testUser(t, "carer1")

	answers := testAnswers()
	answers.A3 = 2
	signal := testSignal()

	created, err := CreateAssessment(ctx, user.ID, answers, signal, 0.42)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	reloaded, err := LatestAssessmentFor(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)

	assert.Equal(t, answers, reloaded.AnswerSet())
	assert.Equal(t, 0.42, reloaded.Prediction)

	gotSignal, err := reloaded.GazeSignal()
	require.NoError(t, err)
	assert.Equal(t, signal, gotSignal)
}

func TestLatestAssessmentForNoRecords(t *testing.T) {
	setupTestDB(t)
	user := testUser(t, "carer1")

	record, err := LatestAssessmentFor(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestListAssessmentsForOrdering(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := testUser(t, "carer1")

	var ids []int
	for i := 0; i < 3; i++ {
		record, err := CreateAssessment(ctx, user.ID, testAnswers(), testSignal(), float64(i)/10)
		require.NoError(t, err)
		ids = append(ids, record.ID)
		time.Sleep(2 * time.Millisecond)
	}

	records, err := ListAssessmentsFor(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Most recent first.
	assert.Equal(t, ids[2], records[0].ID)
	assert.Equal(t, ids[1], records[1].ID)
	assert.Equal(t, ids[0], records[2].ID)
	assert.True(t, !records[0].Timestamp.Before(records[1].Timestamp))
	assert.True(t, !records[1].Timestamp.Before(records[2].Timestamp))
}

func TestAssessmentsAreScopedToOwner(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	alice := testUser(t, "alice")
	bob := testUser(t, "bob")

	_, err := CreateAssessment(ctx, alice.ID, testAnswers(), testSignal(), 0.2)
	require.NoError(t, err)

	bobAnswers := testAnswers()
	bobAnswers.Age = 6
	_, err = CreateAssessment(ctx, bob.ID, bobAnswers, testSignal(), 0.8)
	require.NoError(t, err)

	latest, err := LatestAssessmentFor(ctx, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, alice.ID, latest.UserID)
	assert.Equal(t, 4, latest.Age)

	records, err := ListAssessmentsFor(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, bob.ID, records[0].UserID)
}

func TestListAssessmentsJoinsUsernames(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := testUser(t, "carer1")

	_, err := CreateAssessment(ctx, user.ID, testAnswers(), testSignal(), 0.5)
	require.NoError(t, err)

	rows, err := ListAssessments(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "carer1", rows[0].Username)
}

func TestCounts(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := testUser(t, "carer1")

	for _, p := range []float64{0.2, 0.7, 0.9} {
		_, err := CreateAssessment(ctx, user.ID, testAnswers(), testSignal(), p)
		require.NoError(t, err)
	}

	users, err := CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, users)

	total, err := CountAssessments(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	positive, err := CountPositive(ctx, 0.7)
	require.NoError(t, err)
	assert.EqualValues(t, 2, positive)
}

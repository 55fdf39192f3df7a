package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AarazooSingh1506/autism-detction-system/internal/database"
	"github.com/AarazooSingh1506/autism-detction-system/internal/models"

	"gorm.io/gorm"
)

// StoreWriteError wraps a persistence failure. The flow surfaces it to the
// user as a retryable failure; no partial record exists when it fires.
type StoreWriteError struct {
	Err error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("failed to persist assessment: %v", e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}

// CreateAssessment appends one immutable record. The gaze signal is stored
// serialized next to the flattened answer columns so the record alone can
// reproduce the feature vector behind its prediction.
func CreateAssessment(ctx context.Context, userID int, answers models.AnswerSet, signal models.GazeSignal, prediction float64) (*models.Assessment, error) {
	blob, err := json.Marshal(signal)
	if err != nil {
		return nil, &StoreWriteError{Err: err}
	}

	record := &models.Assessment{
		UserID:       userID,
		Timestamp:    time.Now().UTC(),
		Age:          answers.Age,
		Gender:       answers.Gender,
		Ethnicity:    answers.Ethnicity,
		Jaundice:     answers.Jaundice,
		AutismFamily: answers.AutismFamily,
		A1:           answers.A1,
		A2:           answers.A2,
		A3:           answers.A3,
		A4:           answers.A4,
		A5:           answers.A5,
		A6:           answers.A6,
		A7:           answers.A7,
		A8:           answers.A8,
		A9:           answers.A9,
		A10:          answers.A10,
		GazePattern:  string(blob),
		Prediction:   prediction,
	}

	if err := database.DB.WithContext(ctx).Create(record).Error; err != nil {
		return nil, &StoreWriteError{Err: err}
	}
	return record, nil
}

// LatestAssessmentFor returns the most recent record for a user, or nil
// when the user has none.
func LatestAssessmentFor(ctx context.Context, userID int) (*models.Assessment, error) {
	var record models.Assessment
	result := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		First(&record)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &record, nil
}

// ListAssessmentsFor returns a user's records, most recent first.
func ListAssessmentsFor(ctx context.Context, userID int) ([]models.Assessment, error) {
	var records []models.Assessment
	result := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&records)
	return records, result.Error
}

// AssessmentWithUser is a record joined with its owner's username, for
// admin listings.
type AssessmentWithUser struct {
	models.Assessment
	Username string `json:"username"`
}

// ListAssessments returns all records with usernames, most recent first.
// limit <= 0 means no limit.
func ListAssessments(ctx context.Context, limit int) ([]AssessmentWithUser, error) {
	var rows []AssessmentWithUser
	query := database.DB.WithContext(ctx).
		Table("assessments").
		Select("assessments.*, users.username").
		Joins("JOIN users ON users.id = assessments.user_id").
		Order("assessments.timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Scan(&rows)
	return rows, result.Error
}

func CountAssessments(ctx context.Context) (int64, error) {
	var count int64
	result := database.DB.WithContext(ctx).Model(&models.Assessment{}).Count(&count)
	return count, result.Error
}

// CountPositive counts records whose prediction meets the positive
// threshold.
func CountPositive(ctx context.Context, threshold float64) (int64, error) {
	var count int64
	result := database.DB.WithContext(ctx).
		Model(&models.Assessment{}).
		Where("prediction >= ?", threshold).
		Count(&count)
	return count, result.Error
}

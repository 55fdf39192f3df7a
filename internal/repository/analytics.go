package repository

import (
	"context"
	"fmt"

	"github.com/AarazooSingh1506/autism-detction-system/internal/database"
	"github.com/AarazooSingh1506/autism-detction-system/internal/models"
)

// Tally is one bucket of a group-by projection.
type Tally struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// AgeTally is one bucket of the age distribution.
type AgeTally struct {
	Age   int   `json:"age"`
	Count int64 `json:"count"`
}

// groupColumns is the allowlist for GroupTally; the column name is
// interpolated into SQL and must never come from user input unchecked.
var groupColumns = map[string]bool{
	"gender":        true,
	"ethnicity":     true,
	"jaundice":      true,
	"autism_family": true,
}

// GroupTally counts assessments grouped by one categorical column.
func GroupTally(ctx context.Context, column string) ([]Tally, error) {
	if !groupColumns[column] {
		return nil, fmt.Errorf("unsupported group-by column %q", column)
	}

	var tallies []Tally
	result := database.DB.WithContext(ctx).
		Table("assessments").
		Select(column + " AS value, COUNT(*) AS count").
		Group(column).
		Order("value").
		Scan(&tallies)
	return tallies, result.Error
}

// AgeDistribution counts assessments grouped by age.
func AgeDistribution(ctx context.Context) ([]AgeTally, error) {
	var tallies []AgeTally
	result := database.DB.WithContext(ctx).
		Table("assessments").
		Select("age, COUNT(*) AS count").
		Group("age").
		Order("age").
		Scan(&tallies)
	return tallies, result.Error
}

// MeanScores returns the column mean of each of the ten question scores.
// Zero records yield all-zero means rather than NULLs.
func MeanScores(ctx context.Context) ([10]float64, error) {
	var row struct {
		A1, A2, A3, A4, A5, A6, A7, A8, A9, A10 float64
	}

	selects := ""
	for i := 1; i <= 10; i++ {
		if i > 1 {
			selects += ", "
		}
		selects += fmt.Sprintf("COALESCE(AVG(a%d), 0) AS a%d", i, i)
	}

	result := database.DB.WithContext(ctx).
		Table("assessments").
		Select(selects).
		Scan(&row)

	return [10]float64{row.A1, row.A2, row.A3, row.A4, row.A5, row.A6, row.A7, row.A8, row.A9, row.A10}, result.Error
}

// AllPredictions returns every stored prediction, for distribution charts.
func AllPredictions(ctx context.Context) ([]float64, error) {
	var predictions []float64
	result := database.DB.WithContext(ctx).
		Model(&models.Assessment{}).
		Order("timestamp").
		Pluck("prediction", &predictions)
	return predictions, result.Error
}

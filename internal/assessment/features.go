package assessment

import (
	"errors"
	"fmt"

	"github.com/AarazooSingh1506/autism-detction-system/internal/models"

	"github.com/go-playground/validator/v10"
)

// FeatureCount is the fixed width of every feature vector: the ten question
// scores, four encoded demographic fields and six gaze signal fields.
const FeatureCount = 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateAnswers checks an answer set against the declared schema and
// returns a ValidationError naming the first offending field.
func ValidateAnswers(answers models.AnswerSet) error {
	err := validate.Struct(answers)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{
			Field:  fe.Field(),
			Reason: fmt.Sprintf("failed the %q constraint", fe.Tag()),
		}
	}
	return err
}

// AssembleFeatures merges a validated answer set and a gaze signal into the
// fixed-order feature vector the classifier consumes. The order is part of
// the model contract and must match the order used at training time:
// a1..a10, age, gender, jaundice, family history, fixations, saccades,
// pupil dilation, attention eyes, attention mouth, attention objects.
func AssembleFeatures(answers models.AnswerSet, signal models.GazeSignal) ([]float64, error) {
	if err := ValidateAnswers(answers); err != nil {
		return nil, err
	}

	vec := make([]float64, 0, FeatureCount)
	for _, score := range answers.Scores() {
		vec = append(vec, float64(score))
	}
	vec = append(vec,
		float64(answers.Age),
		binary(answers.Gender == "male"),
		binary(answers.Jaundice == "yes"),
		binary(answers.AutismFamily == "yes"),
		float64(signal.Fixations),
		float64(signal.Saccades),
		signal.PupilDilation,
		float64(signal.Attention.Eyes),
		float64(signal.Attention.Mouth),
		float64(signal.Attention.Objects),
	)
	return vec, nil
}

func binary(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

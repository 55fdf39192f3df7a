package assessment

import (
	"encoding/json"
	"fmt"

	"github.com/AarazooSingh1506/autism-detction-system/internal/models"
)

const stagedAnswersKey = "staged_answers"

// SessionStore is the slice of session behavior the staging area needs.
// gin-contrib's sessions.Session satisfies it; tests use a map-backed fake.
type SessionStore interface {
	Get(key interface{}) interface{}
	Set(key interface{}, val interface{})
	Delete(key interface{})
	Save() error
}

// StageAnswers validates an answer set and stores it in the caller's
// session, replacing anything already staged. Staged answers live only as
// long as the session.
func StageAnswers(s SessionStore, answers models.AnswerSet) error {
	if err := ValidateAnswers(answers); err != nil {
		return err
	}

	payload, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("failed to serialize staged answers: %w", err)
	}

	s.Set(stagedAnswersKey, string(payload))
	return s.Save()
}

// ConsumeAnswers retrieves and atomically clears the staged answer set.
// Returns ErrNoStagedData when nothing is staged, which is also the state
// after a successful consume.
func ConsumeAnswers(s SessionStore) (models.AnswerSet, error) {
	var answers models.AnswerSet

	raw, ok := s.Get(stagedAnswersKey).(string)
	if !ok || raw == "" {
		return answers, ErrNoStagedData
	}
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		return answers, fmt.Errorf("corrupt staged answers: %w", err)
	}

	s.Delete(stagedAnswersKey)
	if err := s.Save(); err != nil {
		return models.AnswerSet{}, fmt.Errorf("failed to clear staged answers: %w", err)
	}
	return answers, nil
}

// RestoreAnswers puts a consumed answer set back, so a failure after
// consumption returns the flow to the staged state instead of losing the
// user's input. Best effort: a session that cannot save is already lost.
func RestoreAnswers(s SessionStore, answers models.AnswerSet) {
	payload, err := json.Marshal(answers)
	if err != nil {
		return
	}
	s.Set(stagedAnswersKey, string(payload))
	_ = s.Save()
}

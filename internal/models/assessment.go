package models

import (
	"encoding/json"
	"time"
)

// AnswerSet is one questionnaire submission. It is staged in the session
// between the questionnaire step and the scoring step, then flattened into
// an Assessment record. Immutable once submitted.
type AnswerSet struct {
	Age          int    `json:"age" validate:"required,gt=0"`
	Gender       string `json:"gender" validate:"oneof=male female"`
	Ethnicity    string `json:"ethnicity" validate:"required"`
	Jaundice     string `json:"jaundice" validate:"oneof=yes no"`
	AutismFamily string `json:"autism_family" validate:"oneof=yes no"`
	A1           int    `json:"a1" validate:"min=0,max=3"`
	A2           int    `json:"a2" validate:"min=0,max=3"`
	A3           int    `json:"a3" validate:"min=0,max=3"`
	A4           int    `json:"a4" validate:"min=0,max=3"`
	A5           int    `json:"a5" validate:"min=0,max=3"`
	A6           int    `json:"a6" validate:"min=0,max=3"`
	A7           int    `json:"a7" validate:"min=0,max=3"`
	A8           int    `json:"a8" validate:"min=0,max=3"`
	A9           int    `json:"a9" validate:"min=0,max=3"`
	A10          int    `json:"a10" validate:"min=0,max=3"`
}

// Scores returns the ten ordinal question scores in order.
func (a AnswerSet) Scores() [10]int {
	return [10]int{a.A1, a.A2, a.A3, a.A4, a.A5, a.A6, a.A7, a.A8, a.A9, a.A10}
}

// AttentionAreas is the percentage breakdown of where gaze dwelled.
type AttentionAreas struct {
	Eyes    int `json:"eyes"`
	Mouth   int `json:"mouth"`
	Objects int `json:"objects"`
}

// GazeSignal is one simulated eye-tracking capture. It lives only inside
// the assessment flow that generated it and is persisted serialized on the
// parent record.
type GazeSignal struct {
	Fixations     int            `json:"fixations"`
	Saccades      int            `json:"saccades"`
	PupilDilation float64        `json:"pupil_dilation"`
	Attention     AttentionAreas `json:"attention_areas"`
}

// Assessment is the durable record of one completed flow. Records are
// append-only; nothing in the application updates or deletes them.
type Assessment struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	UserID       int       `gorm:"index;not null" json:"user_id"`
	Timestamp    time.Time `gorm:"index" json:"timestamp"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	Ethnicity    string    `json:"ethnicity"`
	Jaundice     string    `json:"jaundice"`
	AutismFamily string    `json:"autism_family"`
	A1           int       `json:"a1"`
	A2           int       `json:"a2"`
	A3           int       `json:"a3"`
	A4           int       `json:"a4"`
	A5           int       `json:"a5"`
	A6           int       `json:"a6"`
	A7           int       `json:"a7"`
	A8           int       `json:"a8"`
	A9           int       `json:"a9"`
	A10          int       `json:"a10"`
	GazePattern  string    `json:"gaze_pattern"`
	Prediction   float64   `json:"prediction"`
}

// AnswerSet reconstructs the questionnaire submission that produced this
// record, so the feature vector behind a stored prediction can be rebuilt.
func (a Assessment) AnswerSet() AnswerSet {
	return AnswerSet{
		Age:          a.Age,
		Gender:       a.Gender,
		Ethnicity:    a.Ethnicity,
		Jaundice:     a.Jaundice,
		AutismFamily: a.AutismFamily,
		A1:           a.A1,
		A2:           a.A2,
		A3:           a.A3,
		A4:           a.A4,
		A5:           a.A5,
		A6:           a.A6,
		A7:           a.A7,
		A8:           a.A8,
		A9:           a.A9,
		A10:          a.A10,
	}
}

// GazeSignal deserializes the stored gaze blob.
func (a Assessment) GazeSignal() (GazeSignal, error) {
	var signal GazeSignal
	err := json.Unmarshal([]byte(a.GazePattern), &signal)
	return signal, err
}

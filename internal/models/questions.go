package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Question is one behavioral questionnaire item.
type Question struct {
	ID   string `yaml:"id" json:"id"`
	Text string `yaml:"text" json:"text"`
}

// Questionnaire holds the ordered behavioral questions.
type Questionnaire struct {
	Questions []Question `yaml:"questions" json:"questions"`
}

// LoadQuestionnaire reads and parses the questions file.
func LoadQuestionnaire(path string) (*Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions file: %w", err)
	}

	var q Questionnaire
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions YAML: %w", err)
	}

	if len(q.Questions) == 0 {
		return nil, fmt.Errorf("questions file %s contains no questions", path)
	}

	return &q, nil
}

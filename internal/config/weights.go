package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mind-engage/mindengage-grades/internal/grading"
)

// weightsFile is the on-disk shape of WEIGHTS_FILE:
//
//	weights:
//	  exam: 0.5
//	  quiz: 0.3
//	  homework: 0.2
type weightsFile struct {
	Weights struct {
		Exam     *float64 `yaml:"exam" validate:"required,min=0,max=1"`
		Quiz     *float64 `yaml:"quiz" validate:"required,min=0,max=1"`
		Homework *float64 `yaml:"homework" validate:"required,min=0,max=1"`
	} `yaml:"weights"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadWeights reads a YAML weight table. An empty path yields the default table.
func LoadWeights(path string) (grading.Weights, error) {
	if path == "" {
		return grading.DefaultWeights(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("weights file: %w", err)
	}
	var wf weightsFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&wf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("weights file %s: %w", path, err)
	}
	if err := validate.Struct(wf); err != nil {
		return nil, fmt.Errorf("weights file %s: %w", path, err)
	}
	w := grading.Weights{
		grading.TypeExam:     *wf.Weights.Exam,
		grading.TypeQuiz:     *wf.Weights.Quiz,
		grading.TypeHomework: *wf.Weights.Homework,
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("weights file %s: %w", path, err)
	}
	return w, nil
}

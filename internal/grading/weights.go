package grading

import (
	"fmt"
	"math"
)

// ScoreType is the category of an assessment.
type ScoreType string

const (
	TypeExam     ScoreType = "exam"
	TypeQuiz     ScoreType = "quiz"
	TypeHomework ScoreType = "homework"
)

var scoreTypes = [...]ScoreType{TypeExam, TypeQuiz, TypeHomework}

// ScoreTypes returns the known types in the order used for bucketing and reporting.
func ScoreTypes() []ScoreType {
	out := make([]ScoreType, len(scoreTypes))
	copy(out, scoreTypes[:])
	return out
}

// Known reports whether t is one of the enumerated score types.
func (t ScoreType) Known() bool {
	switch t {
	case TypeExam, TypeQuiz, TypeHomework:
		return true
	}
	return false
}

// Weights maps a score type to its grading fraction.
// Treat a Weights value as read-only once handed to an Engine.
type Weights map[ScoreType]float64

const weightSumTolerance = 1e-9

// DefaultWeights returns exam 50%, quiz 30%, homework 20%.
func DefaultWeights() Weights {
	return Weights{
		TypeExam:     0.5,
		TypeQuiz:     0.3,
		TypeHomework: 0.2,
	}
}

// Weight returns the fraction for t, or 0 for an unrecognized type.
func (w Weights) Weight(t ScoreType) float64 {
	return w[t]
}

// Validate checks that every known type has a weight in [0,1] and that they sum to 1.
func (w Weights) Validate() error {
	sum := 0.0
	for _, t := range scoreTypes {
		v, ok := w[t]
		if !ok {
			return fmt.Errorf("weights: missing weight for %q", t)
		}
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("weights: %q must be within [0,1], got %v", t, v)
		}
		sum += v
	}
	for t := range w {
		if !t.Known() {
			return fmt.Errorf("weights: unknown score type %q", t)
		}
	}
	if math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("weights: must sum to 1, got %v", sum)
	}
	return nil
}

func (w Weights) clone() Weights {
	out := make(Weights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

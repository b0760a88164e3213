package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWeightsValid(t *testing.T) {
	w := DefaultWeights()
	assert.NoError(t, w.Validate())
	assert.Equal(t, 0.5, w.Weight(TypeExam))
	assert.Equal(t, 0.3, w.Weight(TypeQuiz))
	assert.Equal(t, 0.2, w.Weight(TypeHomework))
	assert.Zero(t, w.Weight("project"))
}

func TestWeightsValidate(t *testing.T) {
	cases := []struct {
		name    string
		w       Weights
		wantErr string
	}{
		{"missing type", Weights{TypeExam: 0.5, TypeQuiz: 0.5}, "missing weight"},
		{"negative", Weights{TypeExam: 1.2, TypeQuiz: -0.2, TypeHomework: 0}, "within [0,1]"},
		{"bad sum", Weights{TypeExam: 0.5, TypeQuiz: 0.3, TypeHomework: 0.3}, "sum to 1"},
		{"unknown type", Weights{TypeExam: 0.5, TypeQuiz: 0.3, TypeHomework: 0.2, "lab": 0}, "unknown score type"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.w.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestScoreTypesReturnsCopy(t *testing.T) {
	got := ScoreTypes()
	assert.Equal(t, []ScoreType{TypeExam, TypeQuiz, TypeHomework}, got)

	got[0] = "lab"
	assert.Equal(t, []ScoreType{TypeExam, TypeQuiz, TypeHomework}, ScoreTypes())
	assert.NoError(t, DefaultWeights().Validate())
}

package scores

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mind-engage/mindengage-grades/internal/grading"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// GradeDoc is one learner's grades for a class, in the nested shape seed
// files and imports use.
type GradeDoc struct {
	LearnerID int64        `json:"learner_id" yaml:"learner_id" validate:"min=0"`
	ClassID   int64        `json:"class_id" yaml:"class_id" validate:"min=0"`
	Scores    []ScoreEntry `json:"scores" yaml:"scores" validate:"dive"`
}

type ScoreEntry struct {
	Type  string   `json:"type" yaml:"type" validate:"required"`
	Score *float64 `json:"score" yaml:"score" validate:"required"`
}

// Flatten validates the documents and unwinds them into one record per score.
// Score values are not range checked.
func Flatten(docs []GradeDoc) ([]grading.Record, error) {
	var out []grading.Record
	for i, d := range docs {
		if err := validate.Struct(d); err != nil {
			return nil, fmt.Errorf("grade %d: %w", i, err)
		}
		for _, s := range d.Scores {
			out = append(out, grading.Record{
				LearnerID: d.LearnerID,
				ClassID:   d.ClassID,
				Type:      grading.ScoreType(strings.TrimSpace(s.Type)),
				Score:     *s.Score,
			})
		}
	}
	return out, nil
}

// LoadSeedFile reads a JSON or YAML array of GradeDoc, chosen by extension.
func LoadSeedFile(path string) ([]grading.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var docs []GradeDoc
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &docs)
	case ".json":
		err = json.Unmarshal(raw, &docs)
	default:
		return nil, fmt.Errorf("seed %s: unsupported extension", path)
	}
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return Flatten(docs)
}

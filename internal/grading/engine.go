package grading

import (
	"fmt"
	"sort"
)

// Record is a single score a learner received in a class.
type Record struct {
	LearnerID int64     `json:"learner_id"`
	ClassID   int64     `json:"class_id"`
	Type      ScoreType `json:"type"`
	Score     float64   `json:"score"`
}

// ClassAverage is one row of the per-class report: the weighted average of
// per-type means for a single class. Missing names the types that had no
// scores and therefore contributed nothing.
type ClassAverage struct {
	ClassID         int64       `json:"class_id"`
	WeightedAverage float64     `json:"weighted_average"`
	Missing         []ScoreType `json:"missing,omitempty"`
}

// Partial reports whether some score type had no observations.
func (c ClassAverage) Partial() bool { return len(c.Missing) > 0 }

// StudentTotal is one row of the ranking report: the sum of every score
// multiplied by its type weight.
type StudentTotal struct {
	StudentID          int64   `json:"student_id"`
	ClassID            int64   `json:"class_id"`
	TotalWeightedScore float64 `json:"total_weighted_score"`
}

// Engine computes the two weighted reports. It holds only immutable
// configuration and is safe for concurrent use.
type Engine struct {
	weights     Weights
	strictMeans bool
}

type Option func(*config)

type config struct {
	Weights     Weights
	StrictMeans bool // empty type bucket fails the call instead of contributing 0
}

func WithWeights(w Weights) Option   { return func(c *config) { c.Weights = w } }
func WithStrictMeans(b bool) Option { return func(c *config) { c.StrictMeans = b } }

// NewEngine builds an engine with the default weight table unless overridden.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := &config{Weights: DefaultWeights()}
	for _, o := range opts {
		o(cfg)
	}
	if err := cfg.Weights.Validate(); err != nil {
		return nil, err
	}
	return &Engine{weights: cfg.Weights.clone(), strictMeans: cfg.StrictMeans}, nil
}

// Weights returns a copy of the engine's weight table.
func (e *Engine) Weights() Weights { return e.weights.clone() }

// AverageByClass returns one row per class the learner has scores in, in
// order of first appearance. A learner with no records yields an empty,
// non-nil slice and a nil error; callers treat that as "no data".
func (e *Engine) AverageByClass(learnerID int64, records []Record) ([]ClassAverage, error) {
	type bucket map[ScoreType][]float64

	var order []int64
	byClass := map[int64]bucket{}
	for _, r := range records {
		if r.LearnerID != learnerID {
			continue
		}
		if !r.Type.Known() {
			return nil, &ComputationError{Record: r, Reason: fmt.Sprintf("unrecognized score type %q", r.Type)}
		}
		b, ok := byClass[r.ClassID]
		if !ok {
			b = bucket{}
			byClass[r.ClassID] = b
			order = append(order, r.ClassID)
		}
		b[r.Type] = append(b[r.Type], r.Score)
	}

	out := make([]ClassAverage, 0, len(order))
	for _, classID := range order {
		row := ClassAverage{ClassID: classID}
		for _, t := range scoreTypes {
			m, ok := mean(byClass[classID][t])
			if !ok {
				if e.strictMeans {
					return nil, &UndefinedMeanError{ClassID: classID, Type: t}
				}
				row.Missing = append(row.Missing, t)
				continue
			}
			row.WeightedAverage += m * e.weights.Weight(t)
		}
		out = append(out, row)
	}
	return out, nil
}

// RankAllStudents sums score*weight per student, keeping the first class
// seen for each, and sorts descending by total. Unrecognized types count 0.
// Ties keep input order.
func (e *Engine) RankAllStudents(records []Record) []StudentTotal {
	idx := map[int64]int{}
	out := make([]StudentTotal, 0)
	for _, r := range records {
		i, ok := idx[r.LearnerID]
		if !ok {
			i = len(out)
			idx[r.LearnerID] = i
			out = append(out, StudentTotal{StudentID: r.LearnerID, ClassID: r.ClassID})
		}
		out[i].TotalWeightedScore += r.Score * e.weights.Weight(r.Type)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalWeightedScore > out[j].TotalWeightedScore
	})
	return out
}

func mean(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), true
}

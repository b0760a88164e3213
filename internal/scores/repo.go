package scores

import (
	"context"

	"github.com/mind-engage/mindengage-grades/internal/grading"
)

// Filter narrows FetchScoreRecords. A nil LearnerID fetches every record.
type Filter struct {
	LearnerID *int64
}

// ForLearner returns a filter matching a single learner.
func ForLearner(id int64) Filter { return Filter{LearnerID: &id} }

// All returns the unfiltered filter.
func All() Filter { return Filter{} }

func (f Filter) match(r grading.Record) bool {
	return f.LearnerID == nil || *f.LearnerID == r.LearnerID
}

// Store is the source of score records for the reports.
type Store interface {
	// FetchScoreRecords returns records in insertion order.
	FetchScoreRecords(ctx context.Context, f Filter) ([]grading.Record, error)
	InsertRecords(ctx context.Context, recs []grading.Record) error
}

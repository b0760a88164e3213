package grading

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefinedMean matches failures caused by a type bucket with no observations.
	ErrUndefinedMean = errors.New("undefined mean")
	// ErrComputation matches failures caused by input the engine has no policy for.
	ErrComputation = errors.New("computation failure")
)

// UndefinedMeanError reports an empty type bucket for a class when strict means are enabled.
type UndefinedMeanError struct {
	ClassID int64
	Type    ScoreType
}

func (e *UndefinedMeanError) Error() string {
	return fmt.Sprintf("class %d: no %s scores to average", e.ClassID, e.Type)
}

func (e *UndefinedMeanError) Is(target error) bool { return target == ErrUndefinedMean }

// ComputationError reports a record the per-class average cannot place in a bucket.
type ComputationError struct {
	Record Record
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("learner %d class %d: %s", e.Record.LearnerID, e.Record.ClassID, e.Reason)
}

func (e *ComputationError) Is(target error) bool { return target == ErrComputation }

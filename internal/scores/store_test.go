package scores_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-grades/internal/db"
	"github.com/mind-engage/mindengage-grades/internal/grading"
	"github.com/mind-engage/mindengage-grades/internal/scores"
)

var fixture = []grading.Record{
	{LearnerID: 1, ClassID: 10, Type: grading.TypeExam, Score: 80},
	{LearnerID: 2, ClassID: 10, Type: grading.TypeQuiz, Score: 55.5},
	{LearnerID: 1, ClassID: 10, Type: grading.TypeQuiz, Score: 90},
	{LearnerID: 1, ClassID: 11, Type: "project", Score: 100},
}

func openSQLite(t *testing.T) *scores.SQLStore {
	t.Helper()
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "grades.db") + "?_pragma=busy_timeout(5000)"
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })
	return scores.NewSQLStore(dbh, string(db.DriverSQLite))
}

func TestStores(t *testing.T) {
	impls := map[string]func(t *testing.T) scores.Store{
		"sqlite": func(t *testing.T) scores.Store { return openSQLite(t) },
		"memory": func(t *testing.T) scores.Store { return scores.NewMemStore() },
	}
	for name, mk := range impls {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := mk(t)

			empty, err := s.FetchScoreRecords(ctx, scores.All())
			require.NoError(t, err)
			assert.NotNil(t, empty)
			assert.Empty(t, empty)

			require.NoError(t, s.InsertRecords(ctx, fixture))
			require.NoError(t, s.InsertRecords(ctx, nil))

			all, err := s.FetchScoreRecords(ctx, scores.All())
			require.NoError(t, err)
			assert.Equal(t, fixture, all)

			one, err := s.FetchScoreRecords(ctx, scores.ForLearner(1))
			require.NoError(t, err)
			assert.Equal(t, []grading.Record{fixture[0], fixture[2], fixture[3]}, one)

			none, err := s.FetchScoreRecords(ctx, scores.ForLearner(99))
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestMemStoreHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := scores.NewMemStore(fixture...)
	_, err := s.FetchScoreRecords(ctx, scores.All())
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.InsertRecords(ctx, fixture), context.Canceled)
}

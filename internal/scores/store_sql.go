package scores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mind-engage/mindengage-grades/internal/grading"
)

// SQLStore reads and writes the scores table over database/sql.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

// NewSQLStore wraps an open handle; driver is "sqlite" or "postgres".
func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) FetchScoreRecords(ctx context.Context, f Filter) ([]grading.Record, error) {
	q := `SELECT learner_id,class_id,score_type,score FROM scores`
	var args []any
	if f.LearnerID != nil {
		q += ` WHERE learner_id=$1`
		args = append(args, *f.LearnerID)
	}
	q += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch scores: %w", err)
	}
	defer rows.Close()

	out := []grading.Record{}
	for rows.Next() {
		var r grading.Record
		var typ string
		if err := rows.Scan(&r.LearnerID, &r.ClassID, &typ, &r.Score); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		r.Type = grading.ScoreType(typ)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) InsertRecords(ctx context.Context, recs []grading.Record) error {
	if len(recs) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO scores (learner_id,class_id,score_type,score,created_at)
		VALUES ($1,$2,$3,$4,$5)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, r := range recs {
		if _, err := stmt.ExecContext(ctx, r.LearnerID, r.ClassID, string(r.Type), r.Score, now); err != nil {
			return fmt.Errorf("insert score for learner %d: %w", r.LearnerID, err)
		}
	}
	return tx.Commit()
}

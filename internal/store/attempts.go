package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Attempt is one answered question headed for the log.
type Attempt struct {
	UserID   string
	QID      string
	Unit     string
	Context  string
	Correct  bool
	Answered string
}

// BossAttempt is the outcome of one gym run.
type BossAttempt struct {
	RunID   string
	UserID  string
	Unit    string
	Passed  bool
	Correct int
	Misses  int
	Reason  string
}

// BossAnswer is one answered question inside a gym run. QIndex counts
// from 1 in answer order.
type BossAnswer struct {
	RunID   string
	UserID  string
	Unit    string
	QIndex  int
	Correct bool
}

// UnitStat is per-unit accuracy derived from the attempt log.
type UnitStat struct {
	Unit    string
	Total   int
	Correct int
}

// Accuracy returns the fraction of correct attempts, 0 when empty.
func (s UnitStat) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// AttemptRepo is the append-mostly answer log.
type AttemptRepo struct {
	db *sql.DB
}

// Log appends one attempt.
func (r *AttemptRepo) Log(ctx context.Context, a Attempt) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attempts (user_id, qid, unit, context, correct, answered, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.UserID, a.QID, a.Unit, a.Context, boolInt(a.Correct), a.Answered,
		time.Now().UTC())
	if err != nil {
		return fmt.Errorf("log attempt: %w", err)
	}
	return nil
}

// LogBoss appends one gym run outcome.
func (r *AttemptRepo) LogBoss(ctx context.Context, b BossAttempt) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO boss_attempts (run_id, user_id, unit, passed, correct, misses, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.RunID, b.UserID, b.Unit, boolInt(b.Passed), b.Correct, b.Misses,
		b.Reason, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("log boss attempt: %w", err)
	}
	return nil
}

// LogBossAnswer appends one answered gym question.
func (r *AttemptRepo) LogBossAnswer(ctx context.Context, a BossAnswer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO boss_answers (run_id, user_id, unit, q_index, correct, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.RunID, a.UserID, a.Unit, a.QIndex, boolInt(a.Correct), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("log boss answer: %w", err)
	}
	return nil
}

// CountCorrect counts correct logged answers for a unit, whatever the
// context they were answered in. This feeds the gym entry gate.
func (r *AttemptRepo) CountCorrect(ctx context.Context, userID, unit string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM attempts
		WHERE user_id = ? AND unit = ? AND correct = 1`,
		userID, unit).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count correct: %w", err)
	}
	return n, nil
}

// UnitStats aggregates accuracy per unit across all contexts.
func (r *AttemptRepo) UnitStats(ctx context.Context, userID string) ([]UnitStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT unit, COUNT(*), SUM(correct) FROM attempts
		WHERE user_id = ? AND unit != ''
		GROUP BY unit ORDER BY CAST(unit AS INTEGER)`, userID)
	if err != nil {
		return nil, fmt.Errorf("unit stats: %w", err)
	}
	defer rows.Close()

	var out []UnitStat
	for rows.Next() {
		var s UnitStat
		if err := rows.Scan(&s.Unit, &s.Total, &s.Correct); err != nil {
			return nil, fmt.Errorf("scan unit stat: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unit stats: %w", err)
	}
	return out, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

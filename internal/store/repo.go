package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	tableRuns   = "runs"
	tableMissed = "missed_answers"
)

// QueryOpts configures run queries with filtering and pagination.
type QueryOpts struct {
	Quiz   string    // only runs of this quiz ("" = all)
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // finished at >= From
	To     time.Time // finished at <= To
}

// MissedRecord is one incorrectly answered question of a run.
type MissedRecord struct {
	Prompt     string
	Answer     string
	UserAnswer string
}

// RunRecord is a completed quiz run.
type RunRecord struct {
	ID         string
	Seq        int64
	Quiz       string
	Correct    int
	Incorrect  int
	Total      int
	StartedAt  time.Time
	FinishedAt time.Time
	Missed     []MissedRecord
}

// Accuracy returns correct answers as a fraction of attempted ones.
func (r RunRecord) Accuracy() float64 {
	n := r.Correct + r.Incorrect
	if n == 0 {
		return 0
	}
	return float64(r.Correct) / float64(n)
}

// QuizStats aggregates all saved runs of one quiz.
type QuizStats struct {
	Quiz           string
	Runs           int
	BestCorrect    int
	TotalCorrect   int
	TotalIncorrect int
	LastPlayed     time.Time
}

// ResultRepo stores and queries completed runs.
type ResultRepo interface {
	// Save stores a run and its missed answers. An empty ID is filled with a
	// new UUID; Seq is always assigned by the store.
	Save(ctx context.Context, run *RunRecord) error

	// Recent returns runs newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]RunRecord, error)

	// Stats returns per-quiz aggregates ordered by quiz name.
	Stats(ctx context.Context) ([]QuizStats, error)

	// Reset deletes every saved run.
	Reset(ctx context.Context) error
}

type resultRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *resultRepo) Save(ctx context.Context, run *RunRecord) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	run.Seq = seq

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := saveRun(ctx, tx, run); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

func saveRun(ctx context.Context, tx dialect.Tx, run *RunRecord) error {
	query, args := sqlite.Insert(tableRuns).
		Columns("id", "seq", "quiz", "correct", "incorrect", "total", "started_at", "finished_at").
		Values(run.ID, run.Seq, run.Quiz, run.Correct, run.Incorrect, run.Total,
			run.StartedAt.UnixMilli(), run.FinishedAt.UnixMilli()).
		Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	if len(run.Missed) == 0 {
		return nil
	}
	ins := sqlite.Insert(tableMissed).
		Columns("run_id", "position", "prompt", "answer", "user_answer")
	for i, m := range run.Missed {
		ins.Values(run.ID, i, m.Prompt, m.Answer, m.UserAnswer)
	}
	query, args = ins.Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save missed answers: %w", err)
	}
	return nil
}

func (r *resultRepo) Recent(ctx context.Context, opts QueryOpts) ([]RunRecord, error) {
	sel := sqlite.Select("id", "seq", "quiz", "correct", "incorrect", "total", "started_at", "finished_at").
		From(entsql.Table(tableRuns)).
		OrderBy(entsql.Desc("seq"))

	if opts.Quiz != "" {
		sel.Where(entsql.EQ("quiz", opts.Quiz))
	}
	if opts.After > 0 {
		sel.Where(entsql.GT("seq", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("seq", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("finished_at", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("finished_at", opts.To.UnixMilli()))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	index := map[string]int{}
	for rows.Next() {
		var (
			run               RunRecord
			started, finished int64
		)
		if err := rows.Scan(&run.ID, &run.Seq, &run.Quiz, &run.Correct, &run.Incorrect,
			&run.Total, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt = time.UnixMilli(started).UTC()
		run.FinishedAt = time.UnixMilli(finished).UTC()
		index[run.ID] = len(runs)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	rows.Close()

	if len(runs) == 0 {
		return nil, nil
	}
	if err := r.attachMissed(ctx, runs, index); err != nil {
		return nil, err
	}
	return runs, nil
}

// attachMissed loads the missed answers of runs in one query.
func (r *resultRepo) attachMissed(ctx context.Context, runs []RunRecord, index map[string]int) error {
	ids := make([]any, len(runs))
	for i, run := range runs {
		ids[i] = run.ID
	}
	query, args := sqlite.Select("run_id", "prompt", "answer", "user_answer").
		From(entsql.Table(tableMissed)).
		Where(entsql.In("run_id", ids...)).
		OrderBy("run_id", "position").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return fmt.Errorf("query missed answers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			runID string
			m     MissedRecord
		)
		if err := rows.Scan(&runID, &m.Prompt, &m.Answer, &m.UserAnswer); err != nil {
			return fmt.Errorf("scan missed answer: %w", err)
		}
		i := index[runID]
		runs[i].Missed = append(runs[i].Missed, m)
	}
	return rows.Err()
}

func (r *resultRepo) Stats(ctx context.Context) ([]QuizStats, error) {
	query, args := sqlite.Select(
		"quiz",
		entsql.As(entsql.Count("*"), "runs"),
		entsql.As(entsql.Max("correct"), "best"),
		entsql.As(entsql.Sum("correct"), "total_correct"),
		entsql.As(entsql.Sum("incorrect"), "total_incorrect"),
		entsql.As(entsql.Max("finished_at"), "last_played"),
	).
		From(entsql.Table(tableRuns)).
		GroupBy("quiz").
		OrderBy("quiz").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var out []QuizStats
	for rows.Next() {
		var (
			s    QuizStats
			last int64
		)
		if err := rows.Scan(&s.Quiz, &s.Runs, &s.BestCorrect, &s.TotalCorrect, &s.TotalIncorrect, &last); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		s.LastPlayed = time.UnixMilli(last).UTC()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats: %w", err)
	}
	return out, nil
}

func (r *resultRepo) Reset(ctx context.Context) error {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	for _, table := range []string{tableMissed, tableRuns} {
		query, args := sqlite.Delete(table).Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			tx.Rollback()
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/katalvlaran/greenwave/bench"
)

// dialect captures what differs between the SQL backends.
type dialect struct {
	driver string
	// numbered placeholders ($1, $2, ...) instead of ?
	numbered bool
	// configure tunes the pool after sql.Open.
	configure func(db *sql.DB)
}

// sqlStore implements Store over database/sql. Timestamps and durations are
// stored as integer nanoseconds so both backends read them back identically.
type sqlStore struct {
	dialect dialect
	dsn     string

	mu sync.RWMutex
	db *sql.DB
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS bench_records (
		run_id             TEXT NOT NULL,
		strategy           TEXT NOT NULL,
		experiment_id      TEXT NOT NULL,
		run                INTEGER NOT NULL,
		vertices           INTEGER NOT NULL,
		edges              INTEGER NOT NULL,
		components         INTEGER NOT NULL,
		cycle_length       INTEGER NOT NULL,
		seed               BIGINT NOT NULL,
		penalty            BIGINT NOT NULL,
		variety            DOUBLE PRECISION NOT NULL,
		duration_ns        BIGINT NOT NULL,
		refined            BOOLEAN NOT NULL,
		refined_penalty    BIGINT NOT NULL,
		refine_iterations  INTEGER NOT NULL,
		refine_duration_ns BIGINT NOT NULL,
		created_at_ns      BIGINT NOT NULL,
		PRIMARY KEY (run_id, strategy)
	)`,
	`CREATE INDEX IF NOT EXISTS bench_records_experiment ON bench_records (experiment_id, run)`,
}

const recordColumns = `run_id, strategy, experiment_id, run, vertices, edges, components, cycle_length, seed,
	penalty, variety, duration_ns, refined, refined_penalty, refine_iterations,
	refine_duration_ns, created_at_ns`

func (s *sqlStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dsn == "" {
		return fmt.Errorf("storage: %s dsn is required", s.dialect.driver)
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open(s.dialect.driver, s.dsn)
	if err != nil {
		return fmt.Errorf("storage: open %s: %w", s.dialect.driver, err)
	}
	if s.dialect.configure != nil {
		s.dialect.configure(db)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("storage: verify %s connection: %w", s.dialect.driver, err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return fmt.Errorf("storage: create schema: %w", err)
		}
	}

	s.db = db
	return nil
}

func (s *sqlStore) SaveRecord(ctx context.Context, rec bench.Record) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, s.rebind(`
		INSERT INTO bench_records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (run_id, strategy) DO UPDATE SET
			experiment_id = excluded.experiment_id,
			run = excluded.run,
			vertices = excluded.vertices,
			edges = excluded.edges,
			components = excluded.components,
			cycle_length = excluded.cycle_length,
			seed = excluded.seed,
			penalty = excluded.penalty,
			variety = excluded.variety,
			duration_ns = excluded.duration_ns,
			refined = excluded.refined,
			refined_penalty = excluded.refined_penalty,
			refine_iterations = excluded.refine_iterations,
			refine_duration_ns = excluded.refine_duration_ns,
			created_at_ns = excluded.created_at_ns
	`),
		rec.RunID, string(rec.Strategy), rec.ExperimentID, rec.Run,
		rec.Vertices, rec.Edges, rec.Components, rec.Cycle, rec.Seed,
		rec.Penalty, rec.Variety, int64(rec.Duration),
		rec.Refined, rec.RefinedPenalty, rec.RefineIterations,
		int64(rec.RefineDuration), rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("storage: save record %s/%s: %w", rec.RunID, rec.Strategy, err)
	}
	return nil
}

func (s *sqlStore) Records(ctx context.Context, experimentID string) ([]bench.Record, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, s.rebind(`
		SELECT `+recordColumns+`
		FROM bench_records
		WHERE experiment_id = ?
		ORDER BY run
	`), experimentID)
	if err != nil {
		return nil, fmt.Errorf("storage: query records of %s: %w", experimentID, err)
	}
	defer rows.Close()

	var out []bench.Record
	for rows.Next() {
		var (
			rec                             bench.Record
			strategy                        string
			duration, refineDuration, nanos int64
		)
		if err := rows.Scan(
			&rec.RunID, &strategy, &rec.ExperimentID, &rec.Run,
			&rec.Vertices, &rec.Edges, &rec.Components, &rec.Cycle, &rec.Seed,
			&rec.Penalty, &rec.Variety, &duration,
			&rec.Refined, &rec.RefinedPenalty, &rec.RefineIterations,
			&refineDuration, &nanos,
		); err != nil {
			return nil, fmt.Errorf("storage: scan record: %w", err)
		}
		rec.Strategy = bench.Strategy(strategy)
		rec.Duration = time.Duration(duration)
		rec.RefineDuration = time.Duration(refineDuration)
		rec.CreatedAt = time.Unix(0, nanos).UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read records: %w", err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Run != out[j].Run {
			return out[i].Run < out[j].Run
		}
		return strategyRank(out[i].Strategy) < strategyRank(out[j].Strategy)
	})
	return out, nil
}

func (s *sqlStore) Experiments(ctx context.Context) ([]string, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT experiment_id, MAX(created_at_ns) AS last_ns
		FROM bench_records
		GROUP BY experiment_id
		ORDER BY last_ns DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("storage: query experiments: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var (
			id   string
			last int64
		)
		if err := rows.Scan(&id, &last); err != nil {
			return nil, fmt.Errorf("storage: scan experiment: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (s *sqlStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *sqlStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}
	return s.db, nil
}

// rebind rewrites ? placeholders to $n for dialects that number them.
func (s *sqlStore) rebind(query string) string {
	if !s.dialect.numbered {
		return query
	}
	var (
		b strings.Builder
		n int
	)
	b.Grow(len(query) + 16)
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

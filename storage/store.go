// Package storage persists benchmark records.
//
// Every backend implements Store, and Store satisfies bench.RecordSink, so a
// store can be handed straight to bench.WithRecordSink. Records are keyed by
// (RunID, Strategy); saving the same key twice replaces the first record.
//
// Backends:
//
//	memory   - process-local, for tests and throwaway runs.
//	sqlite   - modernc.org/sqlite, a file path as DSN.
//	postgres - jackc/pgx through database/sql, a connection URL as DSN.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/greenwave/bench"
)

// ErrNotInitialized is returned by operations on a store before Init.
var ErrNotInitialized = errors.New("storage: store is not initialized")

// Store persists bench.Record values.
type Store interface {
	Init(ctx context.Context) error
	SaveRecord(ctx context.Context, rec bench.Record) error
	// Records returns the records of one experiment ordered by run, then
	// strategy in bench.Strategies order.
	Records(ctx context.Context, experimentID string) ([]bench.Record, error)
	// Experiments lists known experiment ids, most recent first.
	Experiments(ctx context.Context) ([]string, error)
	Close() error
}

var _ bench.RecordSink = Store(nil)

// Backend names accepted by NewStore.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// NewStore returns an uninitialized store for kind; "" means memory.
// dsn is a file path for sqlite and a connection URL for postgres.
func NewStore(kind, dsn string) (Store, error) {
	switch kind {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite:
		return NewSQLiteStore(dsn), nil
	case BackendPostgres:
		return NewPostgresStore(dsn), nil
	default:
		return nil, fmt.Errorf("storage: unsupported backend %q", kind)
	}
}

// strategyRank orders strategies the way bench.Strategies lists them.
func strategyRank(s bench.Strategy) int {
	for i, st := range bench.Strategies {
		if st == s {
			return i
		}
	}
	return len(bench.Strategies)
}

package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/katalvlaran/greenwave/bench"
)

type recordKey struct {
	runID    string
	strategy bench.Strategy
}

// MemoryStore keeps records in maps guarded by a RWMutex.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	records     map[recordKey]bench.Record
	order       []string // experiment ids by first appearance
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	s.initialized = true
	s.records = make(map[recordKey]bench.Record)
	return nil
}

func (s *MemoryStore) SaveRecord(_ context.Context, rec bench.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return ErrNotInitialized
	}
	if !s.knownLocked(rec.ExperimentID) {
		s.order = append(s.order, rec.ExperimentID)
	}
	s.records[recordKey{rec.RunID, rec.Strategy}] = rec
	return nil
}

func (s *MemoryStore) Records(_ context.Context, experimentID string) ([]bench.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	var out []bench.Record
	for _, rec := range s.records {
		if rec.ExperimentID == experimentID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Run != out[j].Run {
			return out[i].Run < out[j].Run
		}
		return strategyRank(out[i].Strategy) < strategyRank(out[j].Strategy)
	})
	return out, nil
}

func (s *MemoryStore) Experiments(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.initialized {
		return nil, ErrNotInitialized
	}
	out := make([]string, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, s.order[i])
	}
	return out, nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = false
	s.records = nil
	s.order = nil
	return nil
}

func (s *MemoryStore) knownLocked(experimentID string) bool {
	for _, id := range s.order {
		if id == experimentID {
			return true
		}
	}
	return false
}

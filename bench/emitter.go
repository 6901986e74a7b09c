package bench

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/greenwave/core"
	"github.com/katalvlaran/greenwave/heuristic"
)

// emitter reorders finished runs so that variety, storage and RunEnded
// always see runs 0, 1, 2, ... regardless of completion order.
type emitter struct {
	mu      sync.Mutex
	runner  *Runner
	exp     Experiment
	next    int
	pending map[int]*runOutcome
	history map[Strategy][]*core.Solution
	records []Record
}

func newEmitter(r *Runner, exp Experiment) *emitter {
	return &emitter{
		runner:  r,
		exp:     exp,
		pending: make(map[int]*runOutcome),
		history: make(map[Strategy][]*core.Solution),
	}
}

// complete parks out and finalizes every run that is now next in line.
func (e *emitter) complete(ctx context.Context, out *runOutcome) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pending[out.run] = out
	for {
		o, ok := e.pending[e.next]
		if !ok {
			return nil
		}
		delete(e.pending, e.next)
		if err := e.finalize(ctx, o); err != nil {
			return err
		}
		e.next++
	}
}

func (e *emitter) finalize(ctx context.Context, o *runOutcome) error {
	for i, st := range Strategies {
		plan, rec := o.plans[i], &o.records[i]

		prev := e.history[st]
		if len(prev) > 0 {
			var total float64
			for _, p := range prev {
				d, err := heuristic.Distance(o.graph, p, plan)
				if err != nil {
					return fmt.Errorf("run %d %s variety: %w", o.run, st, err)
				}
				total += float64(d)
			}
			rec.Variety = total / float64(len(prev))
		}
		e.history[st] = append(prev, plan)

		if e.runner.sink != nil {
			if err := e.runner.sink.SaveRecord(ctx, *rec); err != nil {
				return fmt.Errorf("run %d %s save: %w", o.run, st, err)
			}
		}
		e.records = append(e.records, *rec)
	}

	e.runner.observers.runEnded(RunReport{
		Experiment: e.exp,
		Run:        o.run,
		RunID:      o.records[0].RunID,
		Records:    o.records,
		Progress:   Summarize(e.exp.ID, e.records),
	})
	return nil
}

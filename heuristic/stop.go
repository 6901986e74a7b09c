package heuristic

import (
	"time"
)

// StopCriteria decides whether LocalSearch runs another iteration.
// Continue is evaluated once per iteration, before any mutation; returning
// false ends the search. A criteria that never returns false runs forever.
type StopCriteria interface {
	Continue(m LocalSearchMetrics) bool
}

// StopFunc adapts a plain function to StopCriteria.
type StopFunc func(m LocalSearchMetrics) bool

// Continue calls f(m).
func (f StopFunc) Continue(m LocalSearchMetrics) bool { return f(m) }

type iterationLimit int

func (l iterationLimit) Continue(m LocalSearchMetrics) bool { return m.Iterations < int(l) }

type stallLimit int

func (l stallLimit) Continue(m LocalSearchMetrics) bool {
	return m.IterationsWithoutImprovement < int(l)
}

// NumberOfIterations continues while fewer than limit iterations have run.
// LocalSearch with NumberOfIterations(k) performs exactly k iterations
// (none for k ≤ 0).
func NumberOfIterations(limit int) StopCriteria { return iterationLimit(limit) }

// NumberOfIterationsWithoutImprovement continues while the number of
// consecutive non-improving iterations is below limit.
func NumberOfIterationsWithoutImprovement(limit int) StopCriteria { return stallLimit(limit) }

type allOf []StopCriteria

func (a allOf) Continue(m LocalSearchMetrics) bool {
	for _, s := range a {
		if !s.Continue(m) {
			return false
		}
	}
	return true
}

type anyOf []StopCriteria

func (a anyOf) Continue(m LocalSearchMetrics) bool {
	for _, s := range a {
		if s.Continue(m) {
			return true
		}
	}
	return false
}

// AllOf continues only while every criteria continues, i.e. the search stops
// as soon as any of them says stop. Nil entries are skipped; AllOf() never stops.
func AllOf(criteria ...StopCriteria) StopCriteria { return allOf(compact(criteria)) }

// AnyOf continues while at least one criteria continues. Nil entries are
// skipped; AnyOf() stops immediately.
func AnyOf(criteria ...StopCriteria) StopCriteria { return anyOf(compact(criteria)) }

func compact(criteria []StopCriteria) []StopCriteria {
	out := make([]StopCriteria, 0, len(criteria))
	for _, s := range criteria {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// timeout is stateful: the deadline is fixed on the first Continue call.
type timeout struct {
	d        time.Duration
	now      func() time.Time
	deadline time.Time
	started  bool
}

func (t *timeout) Continue(LocalSearchMetrics) bool {
	now := t.now()
	if !t.started {
		t.started = true
		t.deadline = now.Add(t.d)
	}
	return now.Before(t.deadline)
}

// Timeout continues until d has elapsed since its first evaluation.
// The returned value holds state; use one per LocalSearch call.
// The check is cooperative: a running iteration is never interrupted.
func Timeout(d time.Duration) StopCriteria {
	return &timeout{d: d, now: time.Now}
}

package bench

import "sync"

// Experiment identifies a benchmark execution.
type Experiment struct {
	ID     string
	Seed   int64
	Config Config
}

// RunReport is delivered after each run, in run order.
type RunReport struct {
	Experiment Experiment
	Run        int
	RunID      string
	// Records holds one record per strategy, in Strategies order.
	Records []Record
	// Progress aggregates all runs finished so far, this one included.
	Progress Summary
}

// Observer follows a benchmark. Calls are serialized by the Runner, so
// implementations need no locking of their own; RunBegun may arrive out of
// run order when runs execute in parallel, RunEnded never does.
type Observer interface {
	BenchmarkBegun(exp Experiment)
	RunBegun(exp Experiment, run int)
	RunEnded(report RunReport)
	BenchmarkEnded(exp Experiment, summary Summary)
}

// observers fans out to every registered Observer under one lock.
type observers struct {
	mu   sync.Mutex
	list []Observer
}

func (o *observers) benchmarkBegun(exp Experiment) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, ob := range o.list {
		ob.BenchmarkBegun(exp)
	}
}

func (o *observers) runBegun(exp Experiment, run int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, ob := range o.list {
		ob.RunBegun(exp, run)
	}
}

func (o *observers) runEnded(report RunReport) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, ob := range o.list {
		ob.RunEnded(report)
	}
}

func (o *observers) benchmarkEnded(exp Experiment, summary Summary) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, ob := range o.list {
		ob.BenchmarkEnded(exp, summary)
	}
}

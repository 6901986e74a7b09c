package bench

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver exports benchmark progress as Prometheus collectors.
type MetricsObserver struct {
	runs            prometheus.Counter
	penalty         *prometheus.HistogramVec
	constructionSec *prometheus.HistogramVec
	variety         *prometheus.GaugeVec
	factors         *prometheus.GaugeVec
}

var _ Observer = (*MetricsObserver)(nil)

// NewMetricsObserver creates the collectors and registers them on reg.
func NewMetricsObserver(reg prometheus.Registerer) (*MetricsObserver, error) {
	m := &MetricsObserver{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "greenwave_runs_total", Help: "Benchmark runs finished.",
		}),
		penalty: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "greenwave_plan_penalty",
			Help:    "Total penalty of plans by strategy and phase.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}, []string{"strategy", "phase"}),
		constructionSec: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "greenwave_construction_seconds",
			Help:    "Wall time of plan construction by strategy.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"strategy"}),
		variety: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "greenwave_plan_variety", Help: "Running mean variety by strategy.",
		}, []string{"strategy"}),
		factors: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "greenwave_heuristic_random_factor", Help: "Heuristic/Random ratio of running means.",
		}, []string{"measure"}),
	}

	for _, c := range []prometheus.Collector{m.runs, m.penalty, m.constructionSec, m.variety, m.factors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MetricsObserver) BenchmarkBegun(Experiment) {}

func (m *MetricsObserver) RunBegun(Experiment, int) {}

func (m *MetricsObserver) RunEnded(r RunReport) {
	m.runs.Inc()
	for _, rec := range r.Records {
		st := string(rec.Strategy)
		m.penalty.WithLabelValues(st, "construction").Observe(float64(rec.Penalty))
		m.constructionSec.WithLabelValues(st).Observe(rec.Duration.Seconds())
		if rec.Refined {
			m.penalty.WithLabelValues(st, "refined").Observe(float64(rec.RefinedPenalty))
		}
	}
	m.setSummary(r.Progress)
}

func (m *MetricsObserver) BenchmarkEnded(_ Experiment, s Summary) {
	m.setSummary(s)
}

func (m *MetricsObserver) setSummary(s Summary) {
	m.variety.WithLabelValues(string(StrategyRandom)).Set(s.Random.Variety.Mean)
	m.variety.WithLabelValues(string(StrategyHeuristic)).Set(s.Heuristic.Variety.Mean)
	m.factors.WithLabelValues("variety").Set(s.VarietyFactor)
	m.factors.WithLabelValues("penalty").Set(s.PenaltyFactor)
	m.factors.WithLabelValues("time").Set(s.TimeFactor)
}

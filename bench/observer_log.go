package bench

import (
	"go.uber.org/zap"
)

// LogObserver writes one structured line per run and a summary line.
type LogObserver struct {
	logger *zap.Logger
}

var _ Observer = (*LogObserver)(nil)

// NewLogObserver logs through logger; nil means a no-op logger.
func NewLogObserver(logger *zap.Logger) *LogObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogObserver{logger: logger.With(zap.String("component", "bench"))}
}

func (l *LogObserver) BenchmarkBegun(exp Experiment) {
	l.logger.Info("benchmark begun",
		zap.String("experiment_id", exp.ID),
		zap.Int64("seed", exp.Seed),
		zap.Int("runs", exp.Config.Runs),
		zap.Int("vertices", exp.Config.Vertices),
		zap.Int("cycle", exp.Config.Cycle),
		zap.Int("parallel", exp.Config.Parallel),
		zap.Bool("local_search", exp.Config.LocalSearch.Enabled),
	)
}

func (l *LogObserver) RunBegun(exp Experiment, run int) {
	l.logger.Debug("run begun", zap.String("experiment_id", exp.ID), zap.Int("run", run))
}

func (l *LogObserver) RunEnded(r RunReport) {
	for _, rec := range r.Records {
		fields := []zap.Field{
			zap.String("experiment_id", rec.ExperimentID),
			zap.String("run_id", rec.RunID),
			zap.Int("run", rec.Run),
			zap.String("strategy", string(rec.Strategy)),
			zap.Int("edges", rec.Edges),
			zap.Int("components", rec.Components),
			zap.Int64("penalty", rec.Penalty),
			zap.Float64("variety", rec.Variety),
			zap.Duration("duration", rec.Duration),
		}
		if rec.Refined {
			fields = append(fields,
				zap.Int64("refined_penalty", rec.RefinedPenalty),
				zap.Int("refine_iterations", rec.RefineIterations),
				zap.Duration("refine_duration", rec.RefineDuration),
			)
		}
		l.logger.Info("run ended", fields...)
	}
}

func (l *LogObserver) BenchmarkEnded(exp Experiment, s Summary) {
	l.logger.Info("benchmark ended",
		zap.String("experiment_id", exp.ID),
		zap.Int("runs", s.Runs),
		zap.Float64("random_penalty_mean", s.Random.Penalty.Mean),
		zap.Float64("heuristic_penalty_mean", s.Heuristic.Penalty.Mean),
		zap.Float64("variety_factor", s.VarietyFactor),
		zap.Float64("penalty_factor", s.PenaltyFactor),
		zap.Float64("time_factor", s.TimeFactor),
	)
}

package bench

// StrategySummary aggregates the records of one strategy.
type StrategySummary struct {
	Penalty Stats
	// Variety skips run 0, which has no earlier plan to compare with.
	Variety Stats
	// Seconds is construction wall time.
	Seconds Stats

	RefinedPenalty Stats
	RefineSeconds  Stats
}

// Summary aggregates an experiment. Factors are Heuristic/Random ratios of
// the means; a factor is 0 when the random mean is 0.
type Summary struct {
	ExperimentID string
	Runs         int

	Random    StrategySummary
	Heuristic StrategySummary

	VarietyFactor float64
	PenaltyFactor float64
	TimeFactor    float64
}

// Summarize aggregates records of one experiment. Records of unknown
// strategies are ignored.
func Summarize(experimentID string, records []Record) Summary {
	var (
		byStrategy = map[Strategy]*sample{
			StrategyRandom:    {},
			StrategyHeuristic: {},
		}
		runs = map[string]struct{}{}
	)
	for _, r := range records {
		s, ok := byStrategy[r.Strategy]
		if !ok {
			continue
		}
		runs[r.RunID] = struct{}{}
		s.add(r)
	}

	sum := Summary{
		ExperimentID: experimentID,
		Runs:         len(runs),
		Random:       byStrategy[StrategyRandom].summary(),
		Heuristic:    byStrategy[StrategyHeuristic].summary(),
	}
	sum.VarietyFactor = ratio(sum.Heuristic.Variety.Mean, sum.Random.Variety.Mean)
	sum.PenaltyFactor = ratio(sum.Heuristic.Penalty.Mean, sum.Random.Penalty.Mean)
	sum.TimeFactor = ratio(sum.Heuristic.Seconds.Mean, sum.Random.Seconds.Mean)

	return sum
}

type sample struct {
	penalty, variety, seconds []float64
	refined, refineSeconds    []float64
}

func (s *sample) add(r Record) {
	s.penalty = append(s.penalty, float64(r.Penalty))
	s.seconds = append(s.seconds, r.Duration.Seconds())
	if r.Run > 0 {
		s.variety = append(s.variety, r.Variety)
	}
	if r.Refined {
		s.refined = append(s.refined, float64(r.RefinedPenalty))
		s.refineSeconds = append(s.refineSeconds, r.RefineDuration.Seconds())
	}
}

func (s *sample) summary() StrategySummary {
	return StrategySummary{
		Penalty:        CalcStats(s.penalty),
		Variety:        CalcStats(s.variety),
		Seconds:        CalcStats(s.seconds),
		RefinedPenalty: CalcStats(s.refined),
		RefineSeconds:  CalcStats(s.refineSeconds),
	}
}

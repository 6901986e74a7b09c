package bench

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// TerminalObserver prints human-readable progress to a writer. After every
// run it prints the running averages; at the end, the final summary.
type TerminalObserver struct {
	w     io.Writer
	title string
	runs  int
}

var _ Observer = (*TerminalObserver)(nil)

// NewTerminalObserver writes to w under the given title.
func NewTerminalObserver(w io.Writer, title string) *TerminalObserver {
	return &TerminalObserver{w: w, title: title}
}

func (t *TerminalObserver) BenchmarkBegun(exp Experiment) {
	t.runs = exp.Config.Runs
	fmt.Fprintf(t.w, "Benchmark: %s\n", t.title)
	fmt.Fprintf(t.w, "  experiment %s, seed %d\n", exp.ID, exp.Seed)
	fmt.Fprintf(t.w, "  %s runs, %s vertices, cycle %d\n",
		humanize.Comma(int64(exp.Config.Runs)), humanize.Comma(int64(exp.Config.Vertices)), exp.Config.Cycle)
}

func (t *TerminalObserver) RunBegun(Experiment, int) {}

func (t *TerminalObserver) RunEnded(r RunReport) {
	fmt.Fprintf(t.w, "\nRun %d/%d\n", r.Run+1, t.runs)
	t.printSummary(r.Progress)
}

func (t *TerminalObserver) BenchmarkEnded(_ Experiment, s Summary) {
	fmt.Fprintf(t.w, "\nFinished %s (%d runs)\n", t.title, s.Runs)
	t.printSummary(s)
}

func (t *TerminalObserver) printSummary(s Summary) {
	for _, row := range []struct {
		name string
		ss   StrategySummary
	}{
		{"Random", s.Random},
		{"Heuristic", s.Heuristic},
	} {
		fmt.Fprintf(t.w, "  %-9s construction variety  %s\n", row.name, humanize.CommafWithDigits(row.ss.Variety.Mean, 2))
		fmt.Fprintf(t.w, "  %-9s construction penalty  %s\n", row.name, humanize.CommafWithDigits(row.ss.Penalty.Mean, 2))
		fmt.Fprintf(t.w, "  %-9s construction time     %s\n", row.name, formatSeconds(row.ss.Seconds.Mean))
		if row.ss.RefinedPenalty.N > 0 {
			fmt.Fprintf(t.w, "  %-9s refined penalty       %s\n", row.name, humanize.CommafWithDigits(row.ss.RefinedPenalty.Mean, 2))
			fmt.Fprintf(t.w, "  %-9s refinement time       %s\n", row.name, formatSeconds(row.ss.RefineSeconds.Mean))
		}
	}
	fmt.Fprintf(t.w, "  Heuristic/Random variety factor  %.3f\n", s.VarietyFactor)
	fmt.Fprintf(t.w, "  Heuristic/Random penalty factor  %.3f\n", s.PenaltyFactor)
	fmt.Fprintf(t.w, "  Heuristic/Random time factor     %.3f\n", s.TimeFactor)
}

// formatSeconds renders a duration in seconds with an SI prefix, e.g. "12.5 µs".
func formatSeconds(sec float64) string {
	if sec == 0 {
		return "0 s"
	}
	return humanize.SIWithDigits(sec, 2, "s")
}

// SPDX-License-Identifier: MIT

package sweep

import (
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/agroshift/allocation"
	"github.com/katalvlaran/agroshift/indicator"
	"github.com/katalvlaran/agroshift/linprog"
	"github.com/katalvlaran/agroshift/report"
)

// ScenarioResult is the outcome of one weight vector.
type ScenarioResult struct {
	Weights allocation.WeightVector
	Status  linprog.Status
	Reason  string

	Objective    float64
	Improvements Improvements
	Mean         float64
	Variance     float64
	Score        float64

	// Allocation is nil unless Status == Optimal.
	Allocation map[indicator.Pair]float64
	Elapsed    time.Duration
}

// Valid reports whether the scenario reached an optimum.
func (r ScenarioResult) Valid() bool { return r.Status == linprog.Optimal }

// Report is the full sweep, one result per weight vector in vector order.
type Report struct {
	RunID   uuid.UUID
	Pairs   []indicator.Pair // proportion column order
	Results []ScenarioResult
	Elapsed time.Duration
}

// Counts tallies results by status.
func (r *Report) Counts() map[linprog.Status]int {
	out := make(map[linprog.Status]int, 4)
	for _, res := range r.Results {
		out[res.Status]++
	}

	return out
}

// Ranked returns the valid results sorted by descending score; ties keep
// vector order. Results is left untouched.
func (r *Report) Ranked() []ScenarioResult {
	out := make([]ScenarioResult, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Valid() {
			out = append(out, res)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	return out
}

// Best returns the highest-scoring valid result.
func (r *Report) Best() (ScenarioResult, bool) {
	ranked := r.Ranked()
	if len(ranked) == 0 {
		return ScenarioResult{}, false
	}

	return ranked[0], true
}

// LogSummary logs the n best scenarios at info level.
func (r *Report) LogSummary(l *slog.Logger, n int) {
	ranked := r.Ranked()
	if n > len(ranked) {
		n = len(ranked)
	}
	for i := 0; i < n; i++ {
		l.Info("ranked scenario", append([]any{slog.Int("rank", i+1), slog.String("run", r.RunID.String())}, ranked[i].logAttrs()...)...)
	}
}

// Table renders one row per scenario:
//
//	Weights | W_<indicator> ×7 | Improvement_<indicator> ×7 | Avg_Improvement |
//	Var_Improvement | Score | Objective | Status | <region>_<crop>_proportion ...
func (r *Report) Table() report.Table {
	header := []string{"Weights"}
	for _, k := range indicator.Sustainability {
		header = append(header, "W_"+k.String())
	}
	for _, k := range indicator.Sustainability {
		header = append(header, "Improvement_"+k.String())
	}
	header = append(header, "Avg_Improvement", "Var_Improvement", "Score", "Objective", "Status")
	for _, pr := range r.Pairs {
		header = append(header, pr.String()+"_proportion")
	}

	t := report.Table{Header: header, Rows: make([][]string, 0, len(r.Results))}
	for _, res := range r.Results {
		row := make([]string, 0, len(header))
		row = append(row, res.Weights.String())
		for _, on := range res.Weights {
			row = append(row, report.FormatBool(on))
		}
		for _, v := range res.Improvements {
			row = append(row, report.FormatFloat(v))
		}
		row = append(row,
			report.FormatFloat(res.Mean),
			report.FormatFloat(res.Variance),
			report.FormatFloat(res.Score),
			report.FormatFloat(res.Objective),
			res.Status.String(),
		)
		for _, pr := range r.Pairs {
			v, ok := res.Allocation[pr]
			if !ok {
				v = math.NaN()
			}
			row = append(row, report.FormatFloat(v))
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// logAttrs is the structured form of a result.
func (r ScenarioResult) logAttrs() []any {
	return []any{
		slog.String("weights", r.Weights.String()),
		slog.String("status", r.Status.String()),
		slog.Float64("mean", r.Mean),
		slog.Float64("variance", r.Variance),
		slog.Float64("score", r.Score),
	}
}

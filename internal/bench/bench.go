// Package bench drives repeated solver runs to compare the three
// root-finding methods on wall-clock time and convergence behavior.
package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/copyleftdev/SOLVR/internal/rootfind"
)

// Case is one named solver invocation. Run must be repeatable: the solvers
// are pure, so calling it many times yields identical records.
type Case struct {
	Name string
	Run  func() (*rootfind.Result, error)
}

// Summary aggregates the repeated runs of one case.
type Summary struct {
	// Method is the case name.
	Method string `json:"method"`

	// Result is the convergence record of the last run. Idempotence makes
	// it representative of every run.
	Result *rootfind.Result `json:"result"`

	// AvgDuration is the mean wall-clock time of a single run.
	AvgDuration time.Duration `json:"avg_duration_ns"`
}

// Compare invokes each case runs times and averages the per-run latency.
// A hard failure from any case aborts the whole comparison.
func Compare(cases []Case, runs int) ([]Summary, error) {
	if runs <= 0 {
		return nil, rootfind.WrapErrorf(rootfind.ErrInvalidConfiguration,
			"runs must be positive, got %d", runs).WithOperation("compare")
	}

	summaries := make([]Summary, 0, len(cases))
	for _, c := range cases {
		seconds := make([]float64, runs)
		var last *rootfind.Result

		for i := 0; i < runs; i++ {
			start := time.Now()
			res, err := c.Run()
			if err != nil {
				return nil, err
			}
			seconds[i] = time.Since(start).Seconds()
			last = res
		}

		summaries = append(summaries, Summary{
			Method:      c.Name,
			Result:      last,
			AvgDuration: time.Duration(stat.Mean(seconds, nil) * float64(time.Second)),
		})
	}

	return summaries, nil
}

// WriteTable renders the summaries as an aligned text table.
func WriteTable(w io.Writer, summaries []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tROOT\tITERATIONS\tAVG TIME\tDIAGNOSTIC")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%.12g\t%d\t%s\t%s\n",
			s.Method, s.Result.Root, s.Result.Iterations, s.AvgDuration, s.Result.Diagnostic)
	}
	return tw.Flush()
}

// Package output renders measured records in the CLI's non-plain formats:
// a bordered table, JSON, and a JSON results file export.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/psantana5/benchtab/pkg/benchmark"
)

// Result is the exportable form of one measured row.
type Result struct {
	Label  string  `json:"label"`
	Utime  float64 `json:"utime"`
	Stime  float64 `json:"stime"`
	Cutime float64 `json:"cutime"`
	Cstime float64 `json:"cstime"`
	Total  float64 `json:"total"`
	Real   float64 `json:"real"`
}

// FromTimes converts measured records into exportable results, preserving
// order.
func FromTimes(ts []benchmark.Times) []Result {
	results := make([]Result, len(ts))
	for i, t := range ts {
		results[i] = Result{
			Label:  t.Label,
			Utime:  t.User,
			Stime:  t.System,
			Cutime: t.ChildrenUser,
			Cstime: t.ChildrenSystem,
			Total:  t.Total(),
			Real:   t.Real,
		}
	}
	return results
}

// WriteJSON writes the results as indented JSON.
func WriteJSON(w io.Writer, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// WriteTable renders the results as a bordered table.
func WriteTable(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.Header("Label", "User", "System", "Children", "Total", "Real")

	for _, r := range results {
		table.Append(
			r.Label,
			fmt.Sprintf("%.6f", r.Utime),
			fmt.Sprintf("%.6f", r.Stime),
			fmt.Sprintf("%.6f", r.Cutime+r.Cstime),
			fmt.Sprintf("%.6f", r.Total),
			fmt.Sprintf("%.6f", r.Real),
		)
	}

	table.Render()
}

// ExportFile writes the results to a JSON file.
func ExportFile(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteJSON(f, results); err != nil {
		return err
	}
	return nil
}

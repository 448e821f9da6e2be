package report

import (
	"fmt"
	"io"

	"github.com/rotscan/linkrot/pkg/checker"
)

// Totals counts classification outcomes for one run.
type Totals struct {
	Valid        int
	Invalid      int
	Unresolvable int
}

func (t Totals) Failures() int {
	return t.Invalid + t.Unresolvable
}

// Progress announces the file about to be processed.
func Progress(out io.Writer, path string) {
	fmt.Fprintf(out, "Processing file: %s\n", path)
}

// Links dumps the aggregated link list, one line per link with its source.
func Links(out io.Writer, links []checker.Link) {
	fmt.Fprintf(out, "extracted %d links:\n", len(links))
	for _, l := range links {
		fmt.Fprintf(out, "  %s (%s)\n", l.Target, l.File)
	}
}

// Results prints one classification line per result, in order, and returns
// the tally. Each outcome has its own message shape.
func Results(out io.Writer, results []checker.Result) Totals {
	var t Totals
	for _, r := range results {
		switch r.Outcome() {
		case checker.OutcomeValid:
			t.Valid++
			fmt.Fprintf(out, "%s link is valid\n", r.Link.Target)
		case checker.OutcomeInvalid:
			t.Invalid++
			fmt.Fprintf(out, "%s is not valid (status %d)\n", r.Link.Target, r.Status)
		case checker.OutcomeUnresolvable:
			t.Unresolvable++
			fmt.Fprintf(out, "%s could not be resolved: %v\n", r.Link.Target, r.Err)
		}
	}
	return t
}

package checker

import (
	"net/http"
	"time"
)

// Link is one extracted markdown target, verbatim, plus the file it came from.
type Link struct {
	Target string
	File   string
}

type Outcome string

const (
	OutcomeValid        Outcome = "valid"
	OutcomeInvalid      Outcome = "invalid"
	OutcomeUnresolvable Outcome = "unresolvable"
)

// Result is the outcome of checking a single link. Err is set only for
// transport-level failures; a received response always carries Status.
type Result struct {
	Link    Link
	Status  int
	Err     error
	Elapsed time.Duration
}

func (r Result) Outcome() Outcome {
	if r.Err != nil {
		return OutcomeUnresolvable
	}
	if r.Status == http.StatusOK {
		return OutcomeValid
	}
	return OutcomeInvalid
}

package replay

import (
	"errors"
	"fmt"

	"github.com/getmockd/harreplay/internal/matching"
)

// ErrNoMatch is returned by Engine.Send when the scan exhausts the store
// without finding a matching entry. A failed send aborts the request with
// this signal; it never fabricates a response.
var ErrNoMatch = errors.New("no matching entry in capture")

// Diagnostic is the per-candidate comparison report. See matching.Diagnostic.
type Diagnostic = matching.Diagnostic

// NearMiss is a candidate entry that passed baseline method/URL equality but
// failed strict comparison. Near misses are attached to NoMatchError so an
// exhausted scan can explain which fixtures were close.
type NearMiss struct {
	// Index is the entry's position in the store at scan time.
	Index int `json:"index"`

	// Diagnostic explains what differed.
	Diagnostic *Diagnostic `json:"diagnostic"`
}

// NoMatchError wraps ErrNoMatch with the request that went unanswered and
// any near misses collected during the scan.
type NoMatchError struct {
	Method     string
	URL        string
	NearMisses []NearMiss
}

func (e *NoMatchError) Error() string {
	if len(e.NearMisses) == 0 {
		return fmt.Sprintf("no matching entry in capture for %s %s", e.Method, e.URL)
	}
	return fmt.Sprintf("no matching entry in capture for %s %s (%d near miss(es), closest: %s)",
		e.Method, e.URL, len(e.NearMisses), e.NearMisses[0].Diagnostic.Reason())
}

func (e *NoMatchError) Unwrap() error { return ErrNoMatch }

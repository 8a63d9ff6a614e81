package matching

import (
	"fmt"
	"strings"
)

// maxBodyDisplay caps how much body content a diagnostic carries.
const maxBodyDisplay = 200

// Diagnostic is the transient report produced by one comparison attempt. It
// is debugging data, not control flow: a populated Diagnostic explains why a
// candidate was rejected, and the scan moves on to the next candidate
// regardless.
//
// Baseline mismatches (method or URL) produce an empty Diagnostic — the
// candidate was never a serious contender, so there is nothing to explain.
type Diagnostic struct {
	// OrderMismatch is set when the live and cached header name sequences
	// differ. Value, cookie, and body checks are skipped in that case, so
	// the rest of the report stays empty.
	OrderMismatch bool     `json:"orderMismatch,omitempty"`
	LiveOrder     []string `json:"liveOrder,omitempty"`
	CachedOrder   []string `json:"cachedOrder,omitempty"`

	// Headers and Cookies hold the missing/redundant/mismatching breakdown
	// for the respective name/value sets.
	Headers Diff `json:"headers"`
	Cookies Diff `json:"cookies"`

	// BodyMismatch is set when the recorded body is non-empty and the live
	// body differs from it byte for byte.
	BodyMismatch bool   `json:"bodyMismatch,omitempty"`
	LiveBody     string `json:"liveBody,omitempty"`
	CachedBody   string `json:"cachedBody,omitempty"`
}

// Empty reports whether the comparison recorded no failures.
func (d *Diagnostic) Empty() bool {
	return d == nil || (!d.OrderMismatch && d.Headers.Empty() && d.Cookies.Empty() && !d.BodyMismatch)
}

// Reason creates a human-readable explanation of why the candidate was
// rejected. Empty diagnostics yield "".
func (d *Diagnostic) Reason() string {
	if d.Empty() {
		return ""
	}

	var parts []string
	if d.OrderMismatch {
		parts = append(parts, fmt.Sprintf("header order %v does not equal cached %v", d.LiveOrder, d.CachedOrder))
	}
	if s := diffReason("headers", d.Headers); s != "" {
		parts = append(parts, s)
	}
	if s := diffReason("cookies", d.Cookies); s != "" {
		parts = append(parts, s)
	}
	if d.BodyMismatch {
		parts = append(parts, fmt.Sprintf("body %q does not equal cached %q", d.LiveBody, d.CachedBody))
	}
	return strings.Join(parts, "; ")
}

// diffReason formats one Diff category set into a short description.
func diffReason(name string, d Diff) string {
	if d.Empty() {
		return ""
	}
	var parts []string
	if len(d.Missing) > 0 {
		parts = append(parts, "missing "+joinKeys(d.Missing))
	}
	if len(d.Redundant) > 0 {
		parts = append(parts, "redundant "+joinKeys(d.Redundant))
	}
	if len(d.Mismatching) > 0 {
		parts = append(parts, "mismatching "+joinKeys(d.Mismatching))
	}
	return name + " " + strings.Join(parts, ", ")
}

func joinKeys(diffs []KeyDiff) string {
	keys := make([]string, len(diffs))
	for i, kd := range diffs {
		keys[i] = kd.Key
	}
	return "[" + strings.Join(keys, " ") + "]"
}

// truncate shortens a string to maxLen, appending "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

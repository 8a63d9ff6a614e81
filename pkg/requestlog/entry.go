package requestlog

import "time"

// Entry captures one replay decision.
type Entry struct {
	// ID is a unique identifier for the log entry, assigned by the store.
	ID string `json:"id"`

	// Timestamp is when the send started.
	Timestamp time.Time `json:"timestamp"`

	// Method and URL identify the live request.
	Method string `json:"method"`
	URL    string `json:"url"`

	// Strict records the matching mode in effect.
	Strict bool `json:"strict"`

	// Matched reports whether any entry served the request.
	Matched bool `json:"matched"`

	// EntryIndex is the matched entry's position in the store at scan time,
	// or -1 when nothing matched.
	EntryIndex int `json:"entryIndex"`

	// Status is the replayed response status; 0 when nothing matched.
	Status int `json:"status,omitempty"`

	// Consumed reports whether the matched entry was removed from the store
	// (delete-after-match policy).
	Consumed bool `json:"consumed"`

	// NearMisses counts candidates that passed method/URL equality but
	// failed strict comparison.
	NearMisses int `json:"nearMisses,omitempty"`

	// Reason is the closest near miss explanation when nothing matched.
	Reason string `json:"reason,omitempty"`

	// DurationMs is the decision time in milliseconds.
	DurationMs int `json:"durationMs"`
}

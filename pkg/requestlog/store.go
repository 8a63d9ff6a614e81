package requestlog

// Logger is the minimal interface the replay engine logs through. Any
// implementation that can record entries will do, whether an in-memory
// store or a forwarder to somewhere else.
type Logger interface {
	Log(entry *Entry)
}

// Store is the interface for replay decision history. Store embeds Logger,
// so any Store can be handed to the engine directly.
type Store interface {
	Logger

	// Get retrieves a log entry by ID, or nil if unknown.
	Get(id string) *Entry

	// List returns log entries in insertion order, optionally filtered.
	List(filter *Filter) []*Entry

	// Clear removes all log entries.
	Clear()

	// Count returns the number of log entries.
	Count() int
}

// Filter defines criteria for filtering replay decisions.
type Filter struct {
	// Method filters by HTTP method.
	Method string

	// URL filters by URL prefix.
	URL string

	// Matched filters by match outcome.
	Matched *bool

	// Limit is the maximum number of entries to return (0 = no limit).
	Limit int

	// Offset is the number of matching entries to skip.
	Offset int
}

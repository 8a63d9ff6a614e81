package replay

import (
	"log/slog"
	"sync"
	"time"

	"github.com/getmockd/harreplay/internal/matching"
	"github.com/getmockd/harreplay/pkg/fixture"
	"github.com/getmockd/harreplay/pkg/logging"
	"github.com/getmockd/harreplay/pkg/requestlog"
)

// Config controls how an Engine matches and consumes entries. Start from
// DefaultConfig and override what you need; the zero value disables strict
// matching and entry consumption, which is rarely what you want.
type Config struct {
	// StrictMatching selects full header-order/value/cookie/body comparison.
	// When false, method and URL equality alone decides a match.
	StrictMatching bool

	// DeleteAfterMatch consumes an entry once it has served one request, so
	// repeated identical requests walk through repeated recorded entries.
	// When false, entries are reusable and the store never shrinks.
	DeleteAfterMatch bool

	// Logger receives debug-level traces of every comparison outcome.
	// Defaults to a no-op logger.
	Logger *slog.Logger

	// RequestLog, when set, records one entry per Send for inspection.
	RequestLog requestlog.Logger

	// RedirectHook, when set, is invoked with the live request and the
	// resolved absolute redirect target whenever a matched entry carries
	// one. This is the extension point for cross-origin redirect replay
	// (e.g. dropping an Origin header); nothing is rewritten by default.
	RedirectHook func(live *fixture.RequestSnapshot, target string)
}

// DefaultConfig returns the stock policy: strict matching, one-shot entries.
func DefaultConfig() Config {
	return Config{
		StrictMatching:   true,
		DeleteAfterMatch: true,
	}
}

// Engine replays recorded traffic from a fixture store. Each Engine owns its
// store; sharing one store between engines forfeits the consumption
// guarantees.
type Engine struct {
	mu    sync.Mutex
	store *fixture.Store
	cfg   Config
	log   *slog.Logger
}

// New creates an Engine over the given store.
func New(store *fixture.Store, cfg Config) *Engine {
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{store: store, cfg: cfg, log: log}
}

// Remaining returns how many entries the store still holds.
func (e *Engine) Remaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Len()
}

// Send answers a live request from the capture, or fails with a NoMatchError
// wrapping ErrNoMatch if no recorded entry matches.
//
// Entries are scanned in capture order and the first match wins; this is a
// strict priority rule, not best-match. Under DeleteAfterMatch the matched
// entry is removed before the response is returned. The whole
// scan-then-remove sequence runs under one lock, so concurrent callers
// sharing an Engine can never consume the same entry twice.
func (e *Engine) Send(live *fixture.RequestSnapshot) (*fixture.ResponseSnapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()

	matched := -1
	var nearMisses []NearMiss
	for i := 0; i < e.store.Len(); i++ {
		entry := e.store.At(i)
		ok, diag := matching.Match(live, &entry.Request, e.cfg.StrictMatching)
		if ok {
			matched = i
			break
		}
		if !diag.Empty() {
			e.log.Debug("candidate rejected",
				"index", i,
				"method", live.Method,
				"url", live.URL,
				"reason", diag.Reason())
			nearMisses = append(nearMisses, NearMiss{Index: i, Diagnostic: diag})
		}
	}

	if matched < 0 {
		err := &NoMatchError{Method: live.Method, URL: live.URL, NearMisses: nearMisses}
		e.log.Debug("no entry matched", "method", live.Method, "url", live.URL, "nearMisses", len(nearMisses))
		e.logRequest(live, start, nil, nearMisses, -1, false)
		return nil, err
	}

	// Removal happens after the scan has exited, never mid-iteration.
	entry := e.store.At(matched)
	consumed := false
	if e.cfg.DeleteAfterMatch {
		if err := e.store.RemoveAt(matched); err != nil {
			return nil, err
		}
		consumed = true
	}

	resp, target := Resolve(live, entry)
	if target != "" {
		e.log.Debug("handling redirection", "target", target)
		if e.cfg.RedirectHook != nil {
			e.cfg.RedirectHook(live, target)
		}
	}
	e.log.Debug("request matched",
		"index", matched,
		"method", live.Method,
		"url", live.URL,
		"status", resp.Status,
		"consumed", consumed)
	e.logRequest(live, start, &resp, nearMisses, matched, consumed)
	return &resp, nil
}

// logRequest records the send outcome in the configured request log.
func (e *Engine) logRequest(live *fixture.RequestSnapshot, start time.Time, resp *fixture.ResponseSnapshot, nearMisses []NearMiss, index int, consumed bool) {
	if e.cfg.RequestLog == nil {
		return
	}
	entry := &requestlog.Entry{
		Timestamp:  start,
		Method:     live.Method,
		URL:        live.URL,
		Strict:     e.cfg.StrictMatching,
		Matched:    resp != nil,
		EntryIndex: index,
		Consumed:   consumed,
		NearMisses: len(nearMisses),
		DurationMs: int(time.Since(start).Milliseconds()),
	}
	if resp != nil {
		entry.Status = resp.Status
	} else if len(nearMisses) > 0 {
		entry.Reason = nearMisses[0].Diagnostic.Reason()
	}
	e.cfg.RequestLog.Log(entry)
}

package matching

import (
	"bytes"
	"slices"
	"strings"

	"github.com/getmockd/harreplay/pkg/fixture"
)

// isCookieHeader matches the Cookie header name case-insensitively: HTTP/2
// era captures record lowercase header names.
func isCookieHeader(name string) bool {
	return strings.EqualFold(name, "Cookie")
}

// Match reports whether a live request snapshot matches a cached one.
//
// Method and URL equality is the baseline in both modes; if it fails, the
// candidate is rejected with an empty Diagnostic. Loose mode stops there.
// Strict mode additionally requires:
//
//   - header name order identity — a mismatch short-circuits the remaining
//     checks and the Diagnostic records both orderings;
//   - header value equality, with missing, redundant, and mismatching keys
//     all computed in full for the report;
//   - cookie set equality whenever either side carries a Cookie header,
//     compared order-insensitively (the Cookie header's own position is
//     already covered by the order check);
//   - body equality against the cached body, unless the cached body is
//     empty, which means "don't care".
//
// The Diagnostic aggregates every failure encountered rather than stopping
// at the first, so a single debug trace explains the whole candidate.
func Match(live, cached *fixture.RequestSnapshot, strict bool) (bool, *Diagnostic) {
	if live.Method != cached.Method || live.URL != cached.URL {
		return false, &Diagnostic{}
	}
	if !strict {
		return true, &Diagnostic{}
	}

	diag := &Diagnostic{}

	liveNames := live.HeaderNames()
	cachedNames := cached.HeaderNames()
	if !slices.Equal(liveNames, cachedNames) {
		diag.OrderMismatch = true
		diag.LiveOrder = liveNames
		diag.CachedOrder = cachedNames
		return false, diag
	}

	// The Cookie header gets its own order-insensitive comparison below, so
	// it stays out of the generic value diff: reassembled cookie order must
	// not fail the match.
	liveKeys, liveValues := headerView(live)
	cachedKeys, cachedValues := headerView(cached)
	diag.Headers = DiffValues(liveKeys, liveValues, cachedKeys, cachedValues)

	liveCookie, liveHas := cookieValue(live)
	cachedCookie, cachedHas := cookieValue(cached)
	if liveHas || cachedHas {
		liveCookies := ParseCookieHeader(liveCookie)
		cachedCookies := ParseCookieHeader(cachedCookie)
		diag.Cookies = DiffValues(
			cookieNames(liveCookies), cookieValues(liveCookies),
			cookieNames(cachedCookies), cookieValues(cachedCookies),
		)
	}

	if len(cached.Body) > 0 && !bytes.Equal(live.Body, cached.Body) {
		diag.BodyMismatch = true
		diag.LiveBody = truncate(string(live.Body), maxBodyDisplay)
		diag.CachedBody = truncate(string(cached.Body), maxBodyDisplay)
	}

	return diag.Empty(), diag
}

// headerView returns the header names and name/value view with the Cookie
// header removed.
func headerView(r *fixture.RequestSnapshot) ([]string, map[string]string) {
	values := r.HeaderValues()
	names := make([]string, 0, len(r.Headers))
	for _, h := range r.Headers {
		if isCookieHeader(h.Name) {
			delete(values, h.Name)
			continue
		}
		names = append(names, h.Name)
	}
	return names, values
}

// cookieValue returns the Cookie header value, matched case-insensitively.
// Last occurrence wins, consistent with the generic value view.
func cookieValue(r *fixture.RequestSnapshot) (string, bool) {
	value, found := "", false
	for _, h := range r.Headers {
		if isCookieHeader(h.Name) {
			value, found = h.Value, true
		}
	}
	return value, found
}

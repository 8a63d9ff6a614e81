package replay

import (
	"net/url"
	"strings"

	"github.com/getmockd/harreplay/pkg/fixture"
)

// Resolve produces the response for a matched entry, along with the absolute
// redirect target when the entry recorded one.
//
// A path-absolute target ("/next") is resolved against the live request's
// scheme and host rather than the capture's original origin, so a capture
// taken against one host replays cleanly against a different host or port
// serving the same paths. Any other non-empty target is already absolute and
// passes through unchanged.
//
// The response itself is returned exactly as recorded; no headers are
// rewritten. Redirect-time header adjustment is the job of a RedirectHook on
// the Engine, disabled by default.
func Resolve(live *fixture.RequestSnapshot, entry fixture.Entry) (fixture.ResponseSnapshot, string) {
	target := entry.RedirectTarget
	if target == "" {
		return entry.Response, ""
	}
	if strings.HasPrefix(target, "/") {
		if u, err := url.Parse(live.URL); err == nil {
			target = u.Scheme + "://" + u.Host + target
		}
	}
	return entry.Response, target
}

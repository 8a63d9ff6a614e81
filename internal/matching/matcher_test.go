package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/harreplay/pkg/fixture"
)

func snapshot(method, url string, headers []fixture.Header, body string) *fixture.RequestSnapshot {
	var b []byte
	if body != "" {
		b = []byte(body)
	}
	return &fixture.RequestSnapshot{Method: method, URL: url, Headers: headers, Body: b}
}

func TestMatchBaseline(t *testing.T) {
	cached := snapshot("GET", "https://host.test/a", nil, "")

	tests := []struct {
		name   string
		live   *fixture.RequestSnapshot
		strict bool
		want   bool
	}{
		{
			name: "method and url equal",
			live: snapshot("GET", "https://host.test/a", nil, ""),
			want: true,
		},
		{
			name: "method differs",
			live: snapshot("POST", "https://host.test/a", nil, ""),
			want: false,
		},
		{
			name: "url differs",
			live: snapshot("GET", "https://host.test/b", nil, ""),
			want: false,
		},
		{
			name: "url not normalized",
			live: snapshot("GET", "https://host.test/a/", nil, ""),
			want: false,
		},
		{
			name:   "baseline mismatch in strict mode too",
			live:   snapshot("PUT", "https://host.test/a", nil, ""),
			strict: true,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, diag := Match(tt.live, cached, tt.strict)
			assert.Equal(t, tt.want, ok)
			// Baseline failures never carry detail.
			assert.True(t, diag.Empty())
		})
	}
}

func TestMatchLooseIgnoresHeadersAndBody(t *testing.T) {
	cached := snapshot("GET", "https://host.test/a",
		[]fixture.Header{{Name: "Accept", Value: "text/html"}}, "x=1")
	live := snapshot("GET", "https://host.test/a",
		[]fixture.Header{{Name: "X-Whatever", Value: "yes"}}, "totally different")

	ok, diag := Match(live, cached, false)
	assert.True(t, ok)
	assert.True(t, diag.Empty())
}

func TestMatchStrictHeaderOrder(t *testing.T) {
	cached := snapshot("GET", "https://host.test/a", []fixture.Header{
		{Name: "Accept", Value: "text/html"},
		{Name: "User-Agent", Value: "bot/1.0"},
	}, "")

	t.Run("same order matches", func(t *testing.T) {
		live := snapshot("GET", "https://host.test/a", []fixture.Header{
			{Name: "Accept", Value: "text/html"},
			{Name: "User-Agent", Value: "bot/1.0"},
		}, "")
		ok, _ := Match(live, cached, true)
		assert.True(t, ok)
	})

	t.Run("same pairs different order fails", func(t *testing.T) {
		live := snapshot("GET", "https://host.test/a", []fixture.Header{
			{Name: "User-Agent", Value: "bot/1.0"},
			{Name: "Accept", Value: "text/html"},
		}, "")
		ok, diag := Match(live, cached, true)
		assert.False(t, ok)
		assert.True(t, diag.OrderMismatch)
		assert.Equal(t, []string{"User-Agent", "Accept"}, diag.LiveOrder)
		assert.Equal(t, []string{"Accept", "User-Agent"}, diag.CachedOrder)
		// Order mismatch short-circuits the value and body checks.
		assert.True(t, diag.Headers.Empty())
		assert.False(t, diag.BodyMismatch)
		assert.Contains(t, diag.Reason(), "header order")
	})

	t.Run("missing header fails order check", func(t *testing.T) {
		live := snapshot("GET", "https://host.test/a", []fixture.Header{
			{Name: "Accept", Value: "text/html"},
		}, "")
		ok, diag := Match(live, cached, true)
		assert.False(t, ok)
		assert.True(t, diag.OrderMismatch)
	})
}

func TestMatchStrictHeaderValues(t *testing.T) {
	cached := snapshot("GET", "https://host.test/a", []fixture.Header{
		{Name: "Accept", Value: "text/html"},
		{Name: "User-Agent", Value: "bot/1.0"},
	}, "")
	live := snapshot("GET", "https://host.test/a", []fixture.Header{
		{Name: "Accept", Value: "application/json"},
		{Name: "User-Agent", Value: "bot/2.0"},
	}, "")

	ok, diag := Match(live, cached, true)
	assert.False(t, ok)
	assert.False(t, diag.OrderMismatch)
	// Every mismatching value is reported, not just the first.
	require.Len(t, diag.Headers.Mismatching, 2)
}

func TestMatchStrictCookies(t *testing.T) {
	cachedHeaders := []fixture.Header{
		{Name: "Accept", Value: "text/html"},
		{Name: "Cookie", Value: "a=1; b=2"},
	}
	cached := snapshot("GET", "https://host.test/a", cachedHeaders, "")

	t.Run("cookie order is insignificant", func(t *testing.T) {
		live := snapshot("GET", "https://host.test/a", []fixture.Header{
			{Name: "Accept", Value: "text/html"},
			{Name: "Cookie", Value: "b=2; a=1"},
		}, "")
		ok, diag := Match(live, cached, true)
		assert.True(t, ok, diag.Reason())
		// The reassembled Cookie header string differs, but only the cookie
		// set comparison judges cookie content.
		assert.True(t, diag.Headers.Empty())
	})

	t.Run("lowercase cookie header still compared as cookies", func(t *testing.T) {
		lowerCached := snapshot("GET", "https://host.test/a", []fixture.Header{
			{Name: "accept", Value: "text/html"},
			{Name: "cookie", Value: "a=1; b=2"},
		}, "")
		live := snapshot("GET", "https://host.test/a", []fixture.Header{
			{Name: "accept", Value: "text/html"},
			{Name: "cookie", Value: "b=2; a=1"},
		}, "")
		ok, diag := Match(live, lowerCached, true)
		assert.True(t, ok, diag.Reason())

		live.Headers[1].Value = "a=1; b=9"
		ok, diag = Match(live, lowerCached, true)
		assert.False(t, ok)
		require.Len(t, diag.Cookies.Mismatching, 1)
		assert.Equal(t, "b", diag.Cookies.Mismatching[0].Key)
	})

	t.Run("cookie header position is significant", func(t *testing.T) {
		live := snapshot("GET", "https://host.test/a", []fixture.Header{
			{Name: "Cookie", Value: "a=1; b=2"},
			{Name: "Accept", Value: "text/html"},
		}, "")
		ok, diag := Match(live, cached, true)
		assert.False(t, ok)
		assert.True(t, diag.OrderMismatch)
	})

	t.Run("cookie value mismatch reported", func(t *testing.T) {
		live := snapshot("GET", "https://host.test/a", []fixture.Header{
			{Name: "Accept", Value: "text/html"},
			{Name: "Cookie", Value: "a=1; b=9"},
		}, "")
		ok, diag := Match(live, cached, true)
		assert.False(t, ok)
		require.Len(t, diag.Cookies.Mismatching, 1)
		assert.Equal(t, "b", diag.Cookies.Mismatching[0].Key)
		// The Cookie header never shows up in the generic header diff.
		assert.True(t, diag.Headers.Empty())
	})

	t.Run("missing cookie reported", func(t *testing.T) {
		live := snapshot("GET", "https://host.test/a", []fixture.Header{
			{Name: "Accept", Value: "text/html"},
			{Name: "Cookie", Value: "a=1"},
		}, "")
		ok, diag := Match(live, cached, true)
		assert.False(t, ok)
		require.Len(t, diag.Cookies.Missing, 1)
		assert.Equal(t, "b", diag.Cookies.Missing[0].Key)
	})
}

func TestMatchStrictBody(t *testing.T) {
	headers := []fixture.Header{{Name: "Content-Type", Value: "application/x-www-form-urlencoded"}}

	tests := []struct {
		name       string
		cachedBody string
		liveBody   string
		want       bool
	}{
		{
			name:       "equal bodies match",
			cachedBody: "x=1",
			liveBody:   "x=1",
			want:       true,
		},
		{
			name:       "different bodies fail",
			cachedBody: "x=1",
			liveBody:   "x=2",
			want:       false,
		},
		{
			name:       "empty cached body matches anything",
			cachedBody: "",
			liveBody:   "x=2",
			want:       true,
		},
		{
			name:       "empty live body fails against recorded body",
			cachedBody: "x=1",
			liveBody:   "",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cached := snapshot("POST", "https://host.test/a", headers, tt.cachedBody)
			live := snapshot("POST", "https://host.test/a", headers, tt.liveBody)
			ok, diag := Match(live, cached, true)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, !tt.want, diag.BodyMismatch)
		})
	}
}

func TestMatchAggregatesAllFailures(t *testing.T) {
	cached := snapshot("POST", "https://host.test/a", []fixture.Header{
		{Name: "Cookie", Value: "a=1"},
		{Name: "Accept", Value: "text/html"},
	}, "x=1")
	live := snapshot("POST", "https://host.test/a", []fixture.Header{
		{Name: "Cookie", Value: "a=2"},
		{Name: "Accept", Value: "application/json"},
	}, "x=2")

	ok, diag := Match(live, cached, true)
	assert.False(t, ok)
	assert.False(t, diag.OrderMismatch)
	require.Len(t, diag.Headers.Mismatching, 1)
	assert.Equal(t, "Accept", diag.Headers.Mismatching[0].Key)
	assert.Len(t, diag.Cookies.Mismatching, 1)
	assert.True(t, diag.BodyMismatch)

	reason := diag.Reason()
	assert.Contains(t, reason, "headers")
	assert.Contains(t, reason, "cookies")
	assert.Contains(t, reason, "body")
}

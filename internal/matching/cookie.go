package matching

import "strings"

// Cookie is one name/value pair from a Cookie request header.
type Cookie struct {
	Name  string
	Value string
}

// ParseCookieHeader parses a header-style cookie string ("a=1; b=2") into
// name/value pairs, preserving the order they appeared in. A segment without
// "=" becomes a cookie with an empty value; empty segments are skipped.
func ParseCookieHeader(s string) []Cookie {
	var cookies []Cookie
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, _ := strings.Cut(part, "=")
		cookies = append(cookies, Cookie{Name: name, Value: value})
	}
	return cookies
}

// FormatCookieHeader renders cookies back into header form ("a=1; b=2").
// It is the inverse of ParseCookieHeader for well-formed input.
func FormatCookieHeader(cookies []Cookie) string {
	parts := make([]string, len(cookies))
	for i, c := range cookies {
		parts[i] = c.Name + "=" + c.Value
	}
	return strings.Join(parts, "; ")
}

// cookieNames returns the cookie names in parse order.
func cookieNames(cookies []Cookie) []string {
	names := make([]string, len(cookies))
	for i, c := range cookies {
		names[i] = c.Name
	}
	return names
}

// cookieValues returns a name-to-value view. Last occurrence wins when a
// name repeats.
func cookieValues(cookies []Cookie) map[string]string {
	values := make(map[string]string, len(cookies))
	for _, c := range cookies {
		values[c.Name] = c.Value
	}
	return values
}

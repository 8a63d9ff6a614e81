package matching

// KeyDiff reports one key that differed between the live and cached sides of
// a comparison.
type KeyDiff struct {
	Key    string `json:"key"`
	Live   string `json:"live,omitempty"`
	Cached string `json:"cached,omitempty"`
}

// Diff is the full breakdown of two name/value sets. Missing keys exist only
// on the cached side, redundant keys only on the live side, and mismatching
// keys exist on both with different values. All three categories are always
// computed in full; a non-empty category fails the comparison but never cuts
// the report short.
type Diff struct {
	Missing     []KeyDiff `json:"missing,omitempty"`
	Redundant   []KeyDiff `json:"redundant,omitempty"`
	Mismatching []KeyDiff `json:"mismatching,omitempty"`
}

// Empty reports whether the two sides agreed completely.
func (d Diff) Empty() bool {
	return len(d.Missing) == 0 && len(d.Redundant) == 0 && len(d.Mismatching) == 0
}

// DiffValues compares two name/value sets. The key slices fix the iteration
// order so the report is deterministic; duplicate keys are visited once.
// The same routine serves header and cookie comparison.
func DiffValues(liveKeys []string, live map[string]string, cachedKeys []string, cached map[string]string) Diff {
	var d Diff

	seen := make(map[string]bool, len(cachedKeys))
	for _, key := range cachedKeys {
		if seen[key] {
			continue
		}
		seen[key] = true
		liveValue, ok := live[key]
		if !ok {
			d.Missing = append(d.Missing, KeyDiff{Key: key, Cached: cached[key]})
			continue
		}
		if liveValue != cached[key] {
			d.Mismatching = append(d.Mismatching, KeyDiff{Key: key, Live: liveValue, Cached: cached[key]})
		}
	}

	seen = make(map[string]bool, len(liveKeys))
	for _, key := range liveKeys {
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, ok := cached[key]; !ok {
			d.Redundant = append(d.Redundant, KeyDiff{Key: key, Live: live[key]})
		}
	}

	return d
}

package vcs

// Names of the synthetic entries listed with --all.
const (
	DotName    = "."
	DotDotName = ".."
)

// StatusMap maps the first path component of each listed entry to its status.
type StatusMap map[string]Status

// Lookup returns the status for name, None when the map has no entry.
func (m StatusMap) Lookup(name string) Status {
	if s, ok := m[name]; ok {
		return s
	}
	return None
}

// Len returns the number of entries other than "." and "..".
func (m StatusMap) Len() int {
	n := len(m)
	if _, ok := m[DotName]; ok {
		n--
	}
	if _, ok := m[DotDotName]; ok {
		n--
	}
	return n
}

// Aggregate returns the directory status implied by every entry except the
// synthetic "." and "..": the highest ranked status mapped through
// DirEquivalent. An empty map aggregates to Clean.
//
// Statuses sharing a rank collapse to the same directory status, so map
// iteration order cannot change the result. None never appears in a built
// map.
func (m StatusMap) Aggregate() Status {
	best := Clean
	found := false
	for name, s := range m {
		if name == DotName || name == DotDotName {
			continue
		}
		if !found || s.Outranks(best) {
			best = s
			found = true
		}
	}
	if !found {
		return Clean
	}
	return DirEquivalent(best)
}

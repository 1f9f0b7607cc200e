package tabs

import "fmt"

// Filter selects tabs of the current window. Unset fields match every tab.
type Filter struct {
	// URLs holds match patterns; a tab matches if any pattern matches
	URLs []string

	OpenerTabID   *int
	GroupID       *int
	CookieStoreID *string
	Highlighted   *bool
	Active        *bool
	Pinned        *bool
	Index         *int
}

// Bool returns a pointer to b, for use in filters.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n, for use in filters.
func Int(n int) *int { return &n }

// String returns a pointer to s, for use in filters.
func String(s string) *string { return &s }

// Matcher is a compiled Filter.
type Matcher struct {
	filter   Filter
	patterns []*Pattern
}

// Compile validates the filter and compiles its URL patterns.
func (f Filter) Compile() (*Matcher, error) {
	m := &Matcher{filter: f}
	for _, raw := range f.URLs {
		p, err := CompilePattern(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid filter: %w", err)
		}
		m.patterns = append(m.patterns, p)
	}
	return m, nil
}

// Match reports whether the tab satisfies every set field of the filter.
func (m *Matcher) Match(t Tab) bool {
	f := m.filter
	if f.OpenerTabID != nil && t.OpenerTabID != *f.OpenerTabID {
		return false
	}
	if f.GroupID != nil && t.GroupID != *f.GroupID {
		return false
	}
	if f.CookieStoreID != nil && t.CookieStoreID != *f.CookieStoreID {
		return false
	}
	if f.Highlighted != nil && t.Highlighted != *f.Highlighted {
		return false
	}
	if f.Active != nil && t.Active != *f.Active {
		return false
	}
	if f.Pinned != nil && t.Pinned != *f.Pinned {
		return false
	}
	if f.Index != nil && t.Index != *f.Index {
		return false
	}
	if len(m.patterns) == 0 {
		return true
	}
	for _, p := range m.patterns {
		if p.Match(t.URL) {
			return true
		}
	}
	return false
}

// Apply returns the tabs of list matching the filter, in list order.
func (m *Matcher) Apply(list []Tab) []Tab {
	var out []Tab
	for _, t := range list {
		if m.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

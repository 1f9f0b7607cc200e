package tabs

import (
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	// GroupNone is the group id of a tab that belongs to no tab group.
	GroupNone = -1

	// ReaderPrefix is the URL prefix of a page shown in reader mode.
	ReaderPrefix = "about:reader?url="
)

// Tab is the metadata the host reports for one browser tab.
type Tab struct {
	// ID is stable for the lifetime of the tab
	ID int `yaml:"id" json:"id"`

	// Index is the zero-based position in the window's tab strip
	Index int `yaml:"index" json:"index"`

	// WindowID identifies the window holding the tab
	WindowID int `yaml:"window_id,omitempty" json:"window_id,omitempty"`

	// OpenerTabID is the id of the tab that opened this one, 0 if none
	OpenerTabID int `yaml:"opener_tab_id,omitempty" json:"opener_tab_id,omitempty"`

	Title          string `yaml:"title" json:"title"`
	URL            string `yaml:"url" json:"url"`
	IsInReaderMode bool   `yaml:"reader_mode,omitempty" json:"reader_mode,omitempty"`

	// Active marks the focused tab; exactly one tab per window has it
	Active      bool `yaml:"active,omitempty" json:"active,omitempty"`
	Highlighted bool `yaml:"highlighted,omitempty" json:"highlighted,omitempty"`
	Pinned      bool `yaml:"pinned,omitempty" json:"pinned,omitempty"`

	GroupID       int       `yaml:"group_id" json:"group_id"`
	CookieStoreID string    `yaml:"cookie_store_id,omitempty" json:"cookie_store_id,omitempty"`
	LastAccessed  time.Time `yaml:"last_accessed" json:"last_accessed"`
}

// HasOpener reports whether the tab records an opener.
func (t Tab) HasOpener() bool {
	return t.OpenerTabID != 0
}

// HasGroup reports whether the tab belongs to a tab group.
func (t Tab) HasGroup() bool {
	return t.GroupID != GroupNone
}

// EffectiveURL returns the URL of the page the tab shows, unwrapping
// reader-mode URLs.
func (t Tab) EffectiveURL() string {
	if t.IsInReaderMode {
		return ReaderURL(t.URL)
	}
	return t.URL
}

// ReaderURL returns the page URL wrapped inside a reader-mode URL.
// URLs without the reader prefix are returned unchanged.
func ReaderURL(raw string) string {
	if !strings.HasPrefix(raw, ReaderPrefix) {
		return raw
	}
	inner := raw[len(ReaderPrefix):]
	decoded, err := url.QueryUnescape(inner)
	if err != nil {
		return inner
	}
	return decoded
}

// SortByIndex orders tabs by their strip position.
func SortByIndex(list []Tab) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Index < list[j].Index
	})
}

// FindID returns the position of the tab with the given id, or -1.
func FindID(list []Tab, id int) int {
	for i, t := range list {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// FindIndex returns the position of the tab at the given strip index, or -1.
func FindIndex(list []Tab, index int) int {
	for i, t := range list {
		if t.Index == index {
			return i
		}
	}
	return -1
}

// FindActive returns the position of the first active tab, or -1.
func FindActive(list []Tab) int {
	for i, t := range list {
		if t.Active {
			return i
		}
	}
	return -1
}

// Indices returns the strip indices of the tabs in list order.
func Indices(list []Tab) []int {
	indices := make([]int, len(list))
	for i, t := range list {
		indices[i] = t.Index
	}
	return indices
}

// Dedupe drops repeated tab ids, keeping the first occurrence.
func Dedupe(list []Tab) []Tab {
	seen := make(map[int]bool, len(list))
	out := list[:0:0]
	for _, t := range list {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}

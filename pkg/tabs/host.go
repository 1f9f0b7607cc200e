package tabs

import (
	"context"
	"errors"
)

// ErrTabNotFound is returned when a tab id no longer refers to a tab.
var ErrTabNotFound = errors.New("tab not found")

// Host is the window manager the selection engine reads from and commits to.
// Implementations answer from current state on every call.
type Host interface {
	// QueryTabs returns the tabs of the current window matching the filter,
	// ordered by strip index.
	QueryTabs(ctx context.Context, filter Filter) ([]Tab, error)

	// GetTab returns the tab with the given id, or ErrTabNotFound.
	GetTab(ctx context.Context, id int) (Tab, error)

	// HighlightTabs sets the highlighted tabs of the window. The tab at the
	// first index becomes active. Indices that no longer exist are ignored.
	HighlightTabs(ctx context.Context, indices []int) error
}

// TabAt returns the tab at a strip index. Lookup failures are reported as
// absent rather than as errors.
func TabAt(ctx context.Context, host Host, index int) (Tab, bool) {
	if index < 0 {
		return Tab{}, false
	}
	found, err := host.QueryTabs(ctx, Filter{Index: Int(index)})
	if err != nil || len(found) == 0 {
		return Tab{}, false
	}
	return found[0], true
}

// Package getters computes the tabs each selection command targets. Getters
// are read-only: they query the host and never change the selection.
package getters

import (
	"context"
	"time"

	"github.com/entrhq/tabselect/pkg/tabs"
)

// Getter computes the tabs a command selects. A nil or empty result with a
// nil error means the command aborts and the selection must not change.
type Getter func(ctx context.Context, q *Query) ([]tabs.Tab, error)

// Trigger describes the UI event that started a command.
type Trigger struct {
	// Modifiers lists the held modifier keys, e.g. "Shift"
	Modifiers []string

	// LinkText is the text of the link the menu was opened on
	LinkText string

	// SelectionText is the page text selected when the menu was opened
	SelectionText string
}

// HasModifier reports whether the named modifier key was held.
func (t Trigger) HasModifier(name string) bool {
	for _, m := range t.Modifiers {
		if m == name {
			return true
		}
	}
	return false
}

// Query is the input of a getter.
type Query struct {
	Host    tabs.Host
	Target  tabs.Tab
	Trigger Trigger

	// Now returns the current time; nil means time.Now
	Now func() time.Time
}

func (q *Query) now() time.Time {
	if q.Now != nil {
		return q.Now()
	}
	return time.Now()
}

// all returns every tab of the window.
func (q *Query) all(ctx context.Context) ([]tabs.Tab, error) {
	return q.Host.QueryTabs(ctx, tabs.Filter{})
}

// selected returns the highlighted tabs of the window.
func (q *Query) selected(ctx context.Context) ([]tabs.Tab, error) {
	return q.Host.QueryTabs(ctx, tabs.Filter{Highlighted: tabs.Bool(true)})
}

// byID fetches a tab, treating a stale id as absent.
func (q *Query) byID(ctx context.Context, id int) (tabs.Tab, bool) {
	t, err := q.Host.GetTab(ctx, id)
	if err != nil {
		return tabs.Tab{}, false
	}
	return t, true
}

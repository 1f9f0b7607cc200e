package getters

import (
	"context"

	"github.com/entrhq/tabselect/pkg/tabs"
)

// All selects every tab in the window.
func All(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	return q.all(ctx)
}

// Focused collapses the selection to the active tab.
func Focused(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	return q.Host.QueryTabs(ctx, tabs.Filter{Active: tabs.Bool(true)})
}

// Unselected inverts the selection.
func Unselected(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	return q.Host.QueryTabs(ctx, tabs.Filter{Highlighted: tabs.Bool(false)})
}

// SelectionCluster narrows the selection to its unbroken run containing the
// target.
func SelectionCluster(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	selected, err := q.selected(ctx)
	if err != nil {
		return nil, err
	}
	return Cluster(selected, q.Target.Index), nil
}

// SwitchToHere keeps the selection and moves focus to the target, adding it
// to the selection if needed.
func SwitchToHere(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	selected, err := q.selected(ctx)
	if err != nil {
		return nil, err
	}
	for i := range selected {
		selected[i].Active = selected[i].ID == q.Target.ID
	}
	if tabs.FindID(selected, q.Target.ID) == -1 {
		target := q.Target
		target.Active = true
		target.Highlighted = true
		selected = append(selected, target)
	}
	return selected, nil
}

// CycleForward moves focus to the next selected tab, wrapping around.
func CycleForward(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	return cycle(ctx, q, 1)
}

// CycleBackward moves focus to the previous selected tab, wrapping around.
func CycleBackward(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	return cycle(ctx, q, -1)
}

func cycle(ctx context.Context, q *Query, step int) ([]tabs.Tab, error) {
	selected, err := q.selected(ctx)
	if err != nil || len(selected) < 2 {
		return nil, err
	}
	from := tabs.FindActive(selected)
	if from == -1 {
		from = 0
	}
	to := (from + step + len(selected)) % len(selected)
	for i := range selected {
		selected[i].Active = i == to
	}
	return selected, nil
}

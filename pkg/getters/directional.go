package getters

import (
	"context"

	"github.com/entrhq/tabselect/pkg/tabs"
)

// ToStart selects the target and every tab before it.
func ToStart(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	window, err := q.all(ctx)
	if err != nil {
		return nil, err
	}
	var out []tabs.Tab
	for _, t := range window {
		if t.Index <= q.Target.Index {
			out = append(out, t)
		}
	}
	return out, nil
}

// ToEnd selects the target and every tab after it.
func ToEnd(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	window, err := q.all(ctx)
	if err != nil {
		return nil, err
	}
	var out []tabs.Tab
	for _, t := range window {
		if t.Index >= q.Target.Index {
			out = append(out, t)
		}
	}
	return out, nil
}

// AddLeft extends the selection by the tab left of its leftmost tab.
func AddLeft(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	selected, err := q.selected(ctx)
	if err != nil || len(selected) == 0 {
		return nil, err
	}
	next, ok := tabs.TabAt(ctx, q.Host, selected[0].Index-1)
	if !ok {
		return nil, nil
	}
	return append(selected, next), nil
}

// AddRight extends the selection by the tab right of its rightmost tab.
func AddRight(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	selected, err := q.selected(ctx)
	if err != nil || len(selected) == 0 {
		return nil, err
	}
	next, ok := tabs.TabAt(ctx, q.Host, selected[len(selected)-1].Index+1)
	if !ok {
		return nil, nil
	}
	return append(selected, next), nil
}

// TrailLeft moves focus one tab left, growing or shrinking the trail of
// highlighted tabs anchored at the focused tab.
func TrailLeft(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	return trail(ctx, q, -1)
}

// TrailRight moves focus one tab right, growing or shrinking the trail of
// highlighted tabs anchored at the focused tab.
func TrailRight(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	return trail(ctx, q, 1)
}

// trail steps focus in direction dir (-1 left, 1 right). The step grows the
// trail when the tab ahead is not highlighted or the tab behind is; the
// focused tab then stays selected and focus moves onto the tab ahead.
// Otherwise the step shrinks the trail: the focused tab is dropped and focus
// moves onto the tab ahead, which is already selected.
func trail(ctx context.Context, q *Query, dir int) ([]tabs.Tab, error) {
	selected, err := q.selected(ctx)
	if err != nil {
		return nil, err
	}
	focusPos := tabs.FindActive(selected)
	if focusPos == -1 {
		return nil, nil
	}
	focusIndex := selected[focusPos].Index

	ahead, ok := tabs.TabAt(ctx, q.Host, focusIndex+dir)
	if !ok {
		return nil, nil
	}
	behind, hasBehind := tabs.TabAt(ctx, q.Host, focusIndex-dir)
	behindHighlighted := hasBehind && behind.Highlighted

	if !ahead.Highlighted || behindHighlighted {
		// grow
		selected[focusPos].Active = false
		if pos := tabs.FindID(selected, ahead.ID); pos != -1 {
			selected[pos].Active = true
			return selected, nil
		}
		ahead.Active = true
		return append([]tabs.Tab{ahead}, selected...), nil
	}

	// shrink
	out := make([]tabs.Tab, 0, len(selected)-1)
	for i, t := range selected {
		if i == focusPos {
			continue
		}
		t.Active = t.ID == ahead.ID
		out = append(out, t)
	}
	return out, nil
}

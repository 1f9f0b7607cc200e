package getters

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/entrhq/tabselect/pkg/tabs"
)

// Descendants selects every tab opened, directly or transitively, by the
// target. The target itself is not included.
func Descendants(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	window, err := q.all(ctx)
	if err != nil {
		return nil, err
	}
	return NewForest(window).Descendants(q.Target.ID), nil
}

// TargetDescendants selects the target followed by its descendants.
func TargetDescendants(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	window, err := q.all(ctx)
	if err != nil {
		return nil, err
	}
	return withDescendants(NewForest(window), q.Target), nil
}

// Parent selects the target's opener.
func Parent(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	if !q.Target.HasOpener() {
		return nil, nil
	}
	opener, ok := q.byID(ctx, q.Target.OpenerTabID)
	if !ok || opener.WindowID != q.Target.WindowID {
		return nil, nil
	}
	return []tabs.Tab{opener}, nil
}

// ParentDescendants selects the target's opener and all of its descendants.
// Without a reachable opener it falls back to TargetDescendants.
func ParentDescendants(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	if !q.Target.HasOpener() {
		return TargetDescendants(ctx, q)
	}

	var (
		opener    tabs.Tab
		hasOpener bool
		window    []tabs.Tab
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		opener, hasOpener = q.byID(gctx, q.Target.OpenerTabID)
		return nil
	})
	g.Go(func() error {
		var err error
		window, err = q.all(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	forest := NewForest(window)
	if !hasOpener || opener.WindowID != q.Target.WindowID {
		return withDescendants(forest, q.Target), nil
	}
	return withDescendants(forest, opener), nil
}

// Siblings selects the tabs sharing the target's opener. A target whose
// opener is missing or closed has no parent, and its siblings are the roots
// of the window.
func Siblings(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	window, err := q.all(ctx)
	if err != nil {
		return nil, err
	}
	forest := NewForest(window)
	if parent, ok := forest.Parent(q.Target); ok {
		return forest.Children(parent.ID), nil
	}
	return forest.Roots(), nil
}

// SiblingsDescendants selects the descendants of the target's opener, or
// every tab if the target has no parent in the window.
func SiblingsDescendants(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	window, err := q.all(ctx)
	if err != nil {
		return nil, err
	}
	forest := NewForest(window)
	if parent, ok := forest.Parent(q.Target); ok {
		return forest.Descendants(parent.ID), nil
	}
	return window, nil
}

func withDescendants(forest *Forest, root tabs.Tab) []tabs.Tab {
	return append([]tabs.Tab{root}, forest.Descendants(root.ID)...)
}

// Package selector turns a command's candidate tabs into the final
// highlighted set and commits it to the host.
package selector

import (
	"github.com/entrhq/tabselect/pkg/commands"
	"github.com/entrhq/tabselect/pkg/tabs"
)

// Normalize applies the pinned-tab policy, merges the prior selection when
// shift is set and moves the tab to focus to position 0. Nil means abort.
//
// candidates is not modified.
func Normalize(policy commands.Policy, target tabs.Tab, candidates, prior []tabs.Tab, shift bool) []tabs.Tab {
	if len(candidates) == 0 {
		return nil
	}
	list := append([]tabs.Tab(nil), candidates...)

	if !includePinned(policy, target, list) {
		unpinned := firstUnpinned(list)
		if unpinned == -1 {
			return nil
		}
		list = list[unpinned:]
	}

	if shift {
		list = tabs.Dedupe(append(list, prior...))
	}
	if len(list) == 0 {
		return nil
	}

	if len(list) >= 2 {
		if i := focusIndex(policy, target, list); i > 0 {
			list[0], list[i] = list[i], list[0]
		}
	}
	return list
}

// includePinned decides whether pinned candidates survive. For an inverted
// selection, a result that starts with pinned tabs but whose indices stop
// matching positions before the first unpinned tab suggests the prior
// selection held a pinned tab.
func includePinned(policy commands.Policy, target tabs.Tab, list []tabs.Tab) bool {
	if target.Pinned || policy.Has(commands.PinAgnostic) {
		return true
	}
	if policy.Has(commands.InvertSelection) {
		unpinned := firstUnpinned(list)
		return unpinned < 1 || unpinned > firstMismatch(list)
	}
	return false
}

func firstUnpinned(list []tabs.Tab) int {
	for i, t := range list {
		if !t.Pinned {
			return i
		}
	}
	return -1
}

// firstMismatch returns the first position whose tab index differs from the
// position, or -1.
func firstMismatch(list []tabs.Tab) int {
	for i, t := range list {
		if t.Index != i {
			return i
		}
	}
	return -1
}

// focusIndex picks the position of the tab to focus: the opener for
// commands that ask for it, then the already active tab, then the target,
// then the tab nearest the target with ties going right.
func focusIndex(policy commands.Policy, target tabs.Tab, list []tabs.Tab) int {
	if policy.Has(commands.FocusOpener) && target.HasOpener() {
		if i := tabs.FindID(list, target.OpenerTabID); i != -1 {
			return i
		}
	}
	if i := tabs.FindActive(list); i != -1 {
		return i
	}
	if i := tabs.FindID(list, target.ID); i != -1 {
		return i
	}
	return nearest(list, target.Index)
}

func nearest(list []tabs.Tab, index int) int {
	best, bestDist := -1, 0
	for i, t := range list {
		d := t.Index - index
		if d < 0 {
			d = -d
		}
		if best == -1 || d < bestDist || d == bestDist && t.Index > list[best].Index {
			best, bestDist = i, d
		}
	}
	return best
}

package getters

import (
	"github.com/entrhq/tabselect/pkg/tabs"
)

// Forest indexes one window snapshot by opener. It is built per invocation
// and discarded; tabs may have moved or closed by the next query.
type Forest struct {
	byID     map[int]tabs.Tab
	children map[int][]tabs.Tab
	roots    []tabs.Tab
}

// NewForest indexes the given tabs. Tabs whose opener is not in the window
// are treated as roots.
func NewForest(window []tabs.Tab) *Forest {
	f := &Forest{
		byID:     make(map[int]tabs.Tab, len(window)),
		children: make(map[int][]tabs.Tab),
	}
	for _, t := range window {
		f.byID[t.ID] = t
	}
	for _, t := range window {
		if _, ok := f.byID[t.OpenerTabID]; t.HasOpener() && ok && t.OpenerTabID != t.ID {
			f.children[t.OpenerTabID] = append(f.children[t.OpenerTabID], t)
			continue
		}
		f.roots = append(f.roots, t)
	}
	return f
}

// Tab returns the indexed tab with the given id.
func (f *Forest) Tab(id int) (tabs.Tab, bool) {
	t, ok := f.byID[id]
	return t, ok
}

// Parent returns the opener of a tab if it is in the window. A tab whose
// opener has closed has no parent.
func (f *Forest) Parent(t tabs.Tab) (tabs.Tab, bool) {
	if !t.HasOpener() || t.OpenerTabID == t.ID {
		return tabs.Tab{}, false
	}
	return f.Tab(t.OpenerTabID)
}

// Children returns the tabs opened by the given id, in strip order.
func (f *Forest) Children(id int) []tabs.Tab {
	return f.children[id]
}

// Roots returns the tabs without a parent in the window, in strip order.
func (f *Forest) Roots() []tabs.Tab {
	return f.roots
}

// Descendants returns every tab reachable from id through the opener
// relation, excluding id itself: first its children, then the descendants
// of each child in turn. Each tab appears once even if the opener data
// contains cycles.
func (f *Forest) Descendants(id int) []tabs.Tab {
	visited := map[int]bool{id: true}
	return f.expand(id, visited)
}

func (f *Forest) expand(id int, visited map[int]bool) []tabs.Tab {
	var children []tabs.Tab
	for _, child := range f.children[id] {
		if visited[child.ID] {
			continue
		}
		visited[child.ID] = true
		children = append(children, child)
	}

	out := children
	for _, child := range children {
		out = append(out, f.expand(child.ID, visited)...)
	}
	return out
}

package tabs

import (
	"context"
	"fmt"
	"sync"
)

// MemoryHost is a Host over a single window held in memory.
type MemoryHost struct {
	mu   sync.RWMutex
	tabs []Tab
}

// NewMemoryHost creates a host holding a copy of the given tabs.
func NewMemoryHost(list []Tab) *MemoryHost {
	h := &MemoryHost{}
	h.Replace(list)
	return h
}

// Replace swaps the window contents for a copy of list.
func (h *MemoryHost) Replace(list []Tab) {
	cp := make([]Tab, len(list))
	copy(cp, list)
	SortByIndex(cp)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.tabs = cp
}

// Tabs returns a copy of the window contents in strip order.
func (h *MemoryHost) Tabs() []Tab {
	h.mu.RLock()
	defer h.mu.RUnlock()
	cp := make([]Tab, len(h.tabs))
	copy(cp, h.tabs)
	return cp
}

// QueryTabs returns the tabs matching the filter in strip order.
func (h *MemoryHost) QueryTabs(ctx context.Context, filter Filter) ([]Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := filter.Compile()
	if err != nil {
		return nil, err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	return m.Apply(h.tabs), nil
}

// GetTab returns the tab with the given id.
func (h *MemoryHost) GetTab(ctx context.Context, id int) (Tab, error) {
	if err := ctx.Err(); err != nil {
		return Tab{}, err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if i := FindID(h.tabs, id); i != -1 {
		return h.tabs[i], nil
	}
	return Tab{}, fmt.Errorf("tab %d: %w", id, ErrTabNotFound)
}

// HighlightTabs highlights the tabs at the given indices and activates the
// first one that still exists. If none exist the window is left unchanged.
func (h *MemoryHost) HighlightTabs(ctx context.Context, indices []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	focus := -1
	wanted := make(map[int]bool, len(indices))
	for _, index := range indices {
		if FindIndex(h.tabs, index) == -1 {
			continue
		}
		if focus == -1 {
			focus = index
		}
		wanted[index] = true
	}
	if focus == -1 {
		return nil
	}

	for i := range h.tabs {
		h.tabs[i].Highlighted = wanted[h.tabs[i].Index]
		h.tabs[i].Active = h.tabs[i].Index == focus
	}
	return nil
}

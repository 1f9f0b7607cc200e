package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/tabselect/pkg/getters"
	"github.com/entrhq/tabselect/pkg/tabs"
)

const (
	markActive   = "●"
	markSelected = "◆"
	markNone     = "·"
	markPinned   = "📌"
)

// RenderStrip draws one line per tab in strip order, indented by its depth
// in the opener tree. Lines are cut to width when width is positive.
func RenderStrip(list []tabs.Tab, width int) string {
	sorted := append([]tabs.Tab(nil), list...)
	tabs.SortByIndex(sorted)
	forest := getters.NewForest(sorted)

	var b strings.Builder
	for _, t := range sorted {
		line := renderTab(t, depth(forest, t))
		if width > 0 {
			line = lipgloss.NewStyle().MaxWidth(width).Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func renderTab(t tabs.Tab, depth int) string {
	mark, style := markNone, titleStyle
	switch {
	case t.Active:
		mark, style = markActive, activeStyle
	case t.Highlighted:
		mark, style = markSelected, selectedStyle
	}

	title := t.Title
	if title == "" {
		title = t.URL
	}
	if t.Pinned {
		title = markPinned + " " + title
	}

	return fmt.Sprintf("%s %s %s%s  %s",
		style.Render(mark),
		mutedStyle.Render(fmt.Sprintf("%3d", t.Index)),
		strings.Repeat("  ", depth),
		style.Render(title),
		mutedStyle.Render(t.EffectiveURL()),
	)
}

// depth counts opener hops up to a root, stopping on cycles.
func depth(f *getters.Forest, t tabs.Tab) int {
	seen := map[int]bool{t.ID: true}
	n := 0
	for {
		parent, ok := f.Parent(t)
		if !ok || seen[parent.ID] {
			return n
		}
		seen[parent.ID] = true
		t = parent
		n++
	}
}

// RenderSummary describes the selection in one line.
func RenderSummary(list []tabs.Tab) string {
	var selected, pinned int
	for _, t := range list {
		if t.Highlighted {
			selected++
			if t.Pinned {
				pinned++
			}
		}
	}
	summary := fmt.Sprintf("%d of %d tabs selected", selected, len(list))
	if pinned > 0 {
		summary += fmt.Sprintf(" (%d pinned)", pinned)
	}
	return mutedStyle.Render(summary)
}

package selector

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/tabselect/pkg/commands"
	"github.com/entrhq/tabselect/pkg/config"
	"github.com/entrhq/tabselect/pkg/getters"
	"github.com/entrhq/tabselect/pkg/tabs"
)

// window: a pinned tab, then example.com at 1 and 3, with 2 focused.
func window() []tabs.Tab {
	return []tabs.Tab{
		tab(0, pinned, func(t *tabs.Tab) { t.URL = "https://example.com/pinned" }),
		tab(1, func(t *tabs.Tab) { t.URL = "https://example.com/a" }),
		tab(2, active, func(t *tabs.Tab) { t.URL = "https://other.org/" }),
		tab(3, openedBy(3), func(t *tabs.Tab) { t.URL = "https://example.com/b" }),
	}
}

func highlighted(host *tabs.MemoryHost) []int {
	list, _ := host.QueryTabs(context.Background(), tabs.Filter{Highlighted: tabs.Bool(true)})
	return tabs.Indices(list)
}

func activeTab(host *tabs.MemoryHost) int {
	list := host.Tabs()
	if i := tabs.FindActive(list); i != -1 {
		return list[i].Index
	}
	return -1
}

func TestSelectTabs(t *testing.T) {
	ctx := context.Background()

	t.Run("highlights result without pinned tabs", func(t *testing.T) {
		host := tabs.NewMemoryHost(window())
		s := New(host, commands.Load(nil))

		out, err := s.SelectTabs(ctx, "sameSite", host.Tabs()[1], getters.Trigger{})
		require.NoError(t, err)
		assert.False(t, out.Aborted)
		assert.Equal(t, "sameSite", out.Command.ID)
		assert.Equal(t, []int{1, 3}, out.Indices)
		assert.Equal(t, 1, out.Focused)

		assert.Equal(t, []int{1, 3}, highlighted(host))
		assert.Equal(t, 1, activeTab(host))
	})

	t.Run("abort leaves window unchanged", func(t *testing.T) {
		host := tabs.NewMemoryHost(window())
		s := New(host, commands.Load(nil))
		before := host.Tabs()

		out, err := s.SelectTabs(ctx, "parent", host.Tabs()[1], getters.Trigger{})
		require.NoError(t, err)
		assert.True(t, out.Aborted)
		assert.Equal(t, -1, out.Focused)
		assert.Empty(t, out.Indices)
		assert.Equal(t, before, host.Tabs())
	})

	t.Run("pinned tabs kept only for a pinned target", func(t *testing.T) {
		list := window()
		list[1].Pinned = true
		host := tabs.NewMemoryHost(list)
		s := New(host, commands.Load(nil))

		out, err := s.SelectTabs(ctx, "toStart", host.Tabs()[1], getters.Trigger{})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0}, out.Indices)

		out, err = s.SelectTabs(ctx, "toStart", host.Tabs()[2], getters.Trigger{})
		require.NoError(t, err)
		assert.Equal(t, []int{2}, out.Indices)
	})

	t.Run("parent takes focus", func(t *testing.T) {
		host := tabs.NewMemoryHost(window())
		s := New(host, commands.Load(nil))

		out, err := s.SelectTabs(ctx, "parent__descendants", host.Tabs()[3], getters.Trigger{})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, out.Indices)
		assert.Equal(t, 2, activeTab(host))
	})

	t.Run("shift merges with the selection", func(t *testing.T) {
		host := tabs.NewMemoryHost(window())
		s := New(host, commands.Load(nil))

		out, err := s.SelectTabs(ctx, "sameSite", host.Tabs()[3], getters.Trigger{Modifiers: []string{ModifierShift}})
		require.NoError(t, err)
		assert.Equal(t, 2, out.Focused, "the already focused tab keeps focus")
		assert.Equal(t, []int{1, 2, 3}, highlighted(host))
	})

	t.Run("shift merge can be disabled", func(t *testing.T) {
		manager, err := config.Open(filepath.Join(t.TempDir(), "config.json"))
		require.NoError(t, err)
		config.General(manager).ShiftMerge = false

		host := tabs.NewMemoryHost(window())
		s := New(host, commands.Load(manager))

		_, err = s.SelectTabs(ctx, "sameSite", host.Tabs()[3], getters.Trigger{Modifiers: []string{ModifierShift}})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, highlighted(host))
	})

	t.Run("unknown command", func(t *testing.T) {
		s := New(tabs.NewMemoryHost(window()), commands.Load(nil))
		_, err := s.SelectTabs(ctx, "bogus", tab(0), getters.Trigger{})
		assert.ErrorIs(t, err, commands.ErrUnknownCommand)
	})

	t.Run("root entry selects nothing", func(t *testing.T) {
		s := New(tabs.NewMemoryHost(window()), commands.Load(nil))
		_, err := s.SelectTabs(ctx, commands.RootID, tab(0), getters.Trigger{})
		assert.Error(t, err)
	})
}

func TestSelectTabs_Invert(t *testing.T) {
	ctx := context.Background()

	t.Run("drops pinned tabs when none were selected", func(t *testing.T) {
		host := tabs.NewMemoryHost(window())
		s := New(host, commands.Load(nil))

		out, err := s.SelectTabs(ctx, "unselected", host.Tabs()[2], getters.Trigger{})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, highlighted(host))
		assert.Equal(t, 3, out.Focused, "nearest to the target, ties going right")
	})

	t.Run("keeps pinned tabs when one was selected", func(t *testing.T) {
		list := window()
		list[1].Pinned = true
		list[0].Highlighted = true
		host := tabs.NewMemoryHost(list)
		s := New(host, commands.Load(nil))

		_, err := s.SelectTabs(ctx, "unselected", host.Tabs()[2], getters.Trigger{})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, highlighted(host))
	})
}

func TestSelectFocused(t *testing.T) {
	ctx := context.Background()

	t.Run("runs on the active tab", func(t *testing.T) {
		host := tabs.NewMemoryHost(window())
		s := New(host, commands.Load(nil))

		out, err := s.SelectFocused(ctx, "toEnd", getters.Trigger{})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, out.Indices)
		assert.Equal(t, 2, activeTab(host))
	})

	t.Run("cycling moves focus within the selection", func(t *testing.T) {
		list := window()
		list[3].Highlighted = true
		host := tabs.NewMemoryHost(list)
		s := New(host, commands.Load(nil))

		_, err := s.SelectFocused(ctx, "cycleForward", getters.Trigger{})
		require.NoError(t, err)
		assert.Equal(t, 3, activeTab(host))
		assert.Equal(t, []int{2, 3}, highlighted(host))
	})

	t.Run("shift adds to the selection", func(t *testing.T) {
		list := window()
		list[1].Highlighted = true
		host := tabs.NewMemoryHost(list)
		s := New(host, commands.Load(nil))

		out, err := s.SelectFocused(ctx, "toEnd", getters.Trigger{Modifiers: []string{ModifierShift}})
		require.NoError(t, err)
		assert.Equal(t, 2, out.Focused)
		assert.Equal(t, []int{1, 2, 3}, highlighted(host))
		assert.Equal(t, 2, activeTab(host))
	})

	t.Run("no active tab aborts", func(t *testing.T) {
		list := window()
		list[2].Active = false
		s := New(tabs.NewMemoryHost(list), commands.Load(nil))

		out, err := s.SelectFocused(ctx, "all", getters.Trigger{})
		require.NoError(t, err)
		assert.True(t, out.Aborted)
	})
}

type failingHost struct {
	tabs.Host
	queryErr, highlightErr error
}

func (h failingHost) QueryTabs(ctx context.Context, f tabs.Filter) ([]tabs.Tab, error) {
	if h.queryErr != nil {
		return nil, h.queryErr
	}
	return h.Host.QueryTabs(ctx, f)
}

func (h failingHost) HighlightTabs(ctx context.Context, indices []int) error {
	if h.highlightErr != nil {
		return h.highlightErr
	}
	return h.Host.HighlightTabs(ctx, indices)
}

func TestSelectTabs_HostErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("window closed")

	s := New(failingHost{Host: tabs.NewMemoryHost(window()), queryErr: boom}, commands.Load(nil))
	_, err := s.SelectTabs(ctx, "all", tab(2), getters.Trigger{})
	assert.ErrorIs(t, err, boom)
	_, err = s.SelectFocused(ctx, "all", getters.Trigger{})
	assert.ErrorIs(t, err, boom)

	s = New(failingHost{Host: tabs.NewMemoryHost(window()), highlightErr: boom}, commands.Load(nil))
	_, err = s.SelectTabs(ctx, "all", tab(2), getters.Trigger{})
	assert.ErrorIs(t, err, boom)
}

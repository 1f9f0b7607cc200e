package tabs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow() []Tab {
	return []Tab{
		{ID: 12, Index: 2, URL: "https://b.example/", GroupID: GroupNone, OpenerTabID: 10},
		{ID: 10, Index: 0, URL: "https://a.example/", GroupID: GroupNone, Pinned: true},
		{ID: 11, Index: 1, URL: "https://a.example/x", GroupID: 4, Active: true, Highlighted: true},
		{ID: 13, Index: 3, URL: "file:///tmp/a.txt", GroupID: 4, Highlighted: true, CookieStoreID: "firefox-container-1"},
	}
}

func TestMemoryHost_QueryTabs(t *testing.T) {
	ctx := context.Background()
	host := NewMemoryHost(testWindow())

	t.Run("no filter returns strip order", func(t *testing.T) {
		got, err := host.QueryTabs(ctx, Filter{})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3}, Indices(got))
	})

	t.Run("url pattern", func(t *testing.T) {
		got, err := host.QueryTabs(ctx, Filter{URLs: []string{"*://a.example/*"}})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, Indices(got))
	})

	t.Run("several patterns are alternatives", func(t *testing.T) {
		got, err := host.QueryTabs(ctx, Filter{URLs: []string{"*://b.example/*", "file:///*"}})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, Indices(got))
	})

	t.Run("field filters combine", func(t *testing.T) {
		got, err := host.QueryTabs(ctx, Filter{GroupID: Int(4), Highlighted: Bool(true), Active: Bool(false)})
		require.NoError(t, err)
		assert.Equal(t, []int{3}, Indices(got))
	})

	t.Run("opener and index", func(t *testing.T) {
		got, err := host.QueryTabs(ctx, Filter{OpenerTabID: Int(10)})
		require.NoError(t, err)
		assert.Equal(t, []int{2}, Indices(got))

		got, err = host.QueryTabs(ctx, Filter{Index: Int(9)})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("container and pinned", func(t *testing.T) {
		got, err := host.QueryTabs(ctx, Filter{CookieStoreID: String("firefox-container-1")})
		require.NoError(t, err)
		assert.Equal(t, []int{3}, Indices(got))

		got, err = host.QueryTabs(ctx, Filter{Pinned: Bool(true)})
		require.NoError(t, err)
		assert.Equal(t, []int{0}, Indices(got))
	})

	t.Run("malformed pattern is an error", func(t *testing.T) {
		_, err := host.QueryTabs(ctx, Filter{URLs: []string{"https://nopath"}})
		assert.Error(t, err)
	})
}

func TestMemoryHost_GetTab(t *testing.T) {
	host := NewMemoryHost(testWindow())

	tab, err := host.GetTab(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, 2, tab.Index)

	_, err = host.GetTab(context.Background(), 99)
	assert.True(t, errors.Is(err, ErrTabNotFound))
}

func TestMemoryHost_HighlightTabs(t *testing.T) {
	ctx := context.Background()

	t.Run("first index becomes active", func(t *testing.T) {
		host := NewMemoryHost(testWindow())
		require.NoError(t, host.HighlightTabs(ctx, []int{2, 0}))

		got := host.Tabs()
		assert.True(t, got[0].Highlighted)
		assert.False(t, got[0].Active)
		assert.False(t, got[1].Highlighted)
		assert.True(t, got[2].Highlighted)
		assert.True(t, got[2].Active)
		assert.False(t, got[3].Highlighted)
	})

	t.Run("stale indices are ignored", func(t *testing.T) {
		host := NewMemoryHost(testWindow())
		require.NoError(t, host.HighlightTabs(ctx, []int{7, 3}))

		got := host.Tabs()
		assert.True(t, got[3].Active)
		assert.Equal(t, 1, countHighlighted(got))
	})

	t.Run("only stale indices leaves window unchanged", func(t *testing.T) {
		host := NewMemoryHost(testWindow())
		before := host.Tabs()
		require.NoError(t, host.HighlightTabs(ctx, []int{8, 9}))
		assert.Equal(t, before, host.Tabs())
	})
}

func TestTabAt(t *testing.T) {
	host := NewMemoryHost(testWindow())

	tab, ok := TabAt(context.Background(), host, 3)
	assert.True(t, ok)
	assert.Equal(t, 13, tab.ID)

	_, ok = TabAt(context.Background(), host, -1)
	assert.False(t, ok)
	_, ok = TabAt(context.Background(), host, 4)
	assert.False(t, ok)
}

func TestDedupe(t *testing.T) {
	list := []Tab{{ID: 1}, {ID: 2}, {ID: 1}, {ID: 3}, {ID: 2}}
	got := Dedupe(list)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].ID, got[1].ID, got[2].ID})
	assert.Len(t, got, 3)
}

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	accessed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	yamlPath := filepath.Join(dir, "window.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
version: "1"
tabs:
  - id: 5
    url: https://example.com/
    active: true
    last_accessed: 2024-05-01T10:00:00Z
  - id: 6
    url: about:reader?url=https%3A%2F%2Fexample.com%2Fread
    opener_tab_id: 5
    group_id: 2
`), 0600))

	snap, err := LoadSnapshot(yamlPath)
	require.NoError(t, err)
	require.Len(t, snap.Tabs, 2)

	first, second := snap.Tabs[0], snap.Tabs[1]
	assert.Equal(t, 0, first.Index)
	assert.True(t, first.Highlighted, "active tab is always highlighted")
	assert.Equal(t, GroupNone, first.GroupID)
	assert.True(t, first.LastAccessed.Equal(accessed))
	assert.Equal(t, 1, second.Index)
	assert.True(t, second.IsInReaderMode)
	assert.Equal(t, 2, second.GroupID)
	assert.Equal(t, 5, second.OpenerTabID)

	jsonPath := filepath.Join(dir, "window.json")
	require.NoError(t, SaveSnapshot(jsonPath, snap))
	again, err := LoadSnapshot(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, Indices(snap.Tabs), Indices(again.Tabs))
	assert.Equal(t, GroupNone, again.Tabs[0].GroupID)
	assert.Equal(t, 2, again.Tabs[1].GroupID)
}

func TestLoadSnapshot_MissingID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tabs:\n  - url: https://example.com/\n"), 0600))

	_, err := LoadSnapshot(path)
	assert.Error(t, err)
}

func countHighlighted(list []Tab) int {
	n := 0
	for _, t := range list {
		if t.Highlighted {
			n++
		}
	}
	return n
}

package menu

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/tabselect/pkg/commands"
	"github.com/entrhq/tabselect/pkg/config"
)

func find(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id && !it.Separator {
			return it, true
		}
	}
	return Item{}, false
}

func TestBuild(t *testing.T) {
	items := Build(commands.Load(nil), Options{})

	require.NotEmpty(t, items)
	assert.Equal(t, commands.RootID, items[0].ID)
	assert.Empty(t, items[0].ParentID)
	assert.Equal(t, "Select Tabs", items[0].Title)

	for _, it := range items[1:] {
		assert.Equal(t, commands.RootID, it.ParentID)
	}

	t.Run("separators between tab menu categories", func(t *testing.T) {
		var seps int
		for i, it := range items {
			if !it.Separator {
				continue
			}
			seps++
			assert.Equal(t, []commands.Context{commands.ContextTab}, it.Contexts)
			require.Less(t, i+1, len(items))
			assert.False(t, items[i+1].Separator)
			assert.False(t, items[i-1].Separator)
		}
		// URL, tree, membership, directional, time, selection, switch
		assert.Equal(t, 6, seps)
	})

	t.Run("hidden commands lose the tab context", func(t *testing.T) {
		link, ok := find(items, "matchLinkText")
		require.True(t, ok)
		assert.Equal(t, []commands.Context{commands.ContextLink}, link.Contexts)

		_, ok = find(items, "siblings")
		assert.False(t, ok, "tab-only command hidden from the tab menu is dropped")
	})

	t.Run("shown commands keep all contexts", func(t *testing.T) {
		dup, ok := find(items, "duplicates")
		require.True(t, ok)
		assert.Equal(t, []commands.Context{commands.ContextTab, commands.ContextLink}, dup.Contexts)
	})
}

func TestBuild_Preferences(t *testing.T) {
	manager, err := config.Open(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	registry := commands.Load(manager)
	require.NoError(t, registry.SetPref("duplicates", config.KeyShowInTabMenu, "false"))
	require.NoError(t, registry.SetPref("siblings", config.KeyShowInTabMenu, "true"))

	items := Build(registry, Options{AccessKeys: true})

	dup, ok := find(items, "duplicates")
	require.True(t, ok)
	assert.Equal(t, []commands.Context{commands.ContextLink}, dup.Contexts)

	sib, ok := find(items, "siblings")
	require.True(t, ok)
	assert.Equal(t, "Siblings", sib.Title, "no marker without an access key")
}

func TestMarkAccessKey(t *testing.T) {
	tests := []struct {
		title, key, want string
	}{
		{"Same Site", "s", "&Same Site"},
		{"Same Site Cluster", "s", "&Same Site Cluster"},
		{"Same Site and Descendants", "m", "Sa&me Site and Descendants"},
		{"Parent and Descendants", "n", "Pare&nt and Descendants"},
		{"To the End", "e", "To the &End"},
		{"To the Start", "t", "To the S&tart"},
		{"Accessed in the Past Hour", "h", "Accessed in the Past &Hour"},
		{"Accessed in the Past 24 Hours", "2", "Accessed in the Past &24 Hours"},
		{"Duplicates", "u", "D&uplicates"},
		{"All", "z", "All (&Z)"},
		{"All", "", "All"},
		{"in the", "t", "in &the"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := MarkAccessKey(tt.title, tt.key)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.title, CleanTitle(got))
		})
	}
}

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, "Select Tabs", CleanTitle("&Select Tabs"))
	assert.Equal(t, "Cycle (Up)", CleanTitle("Cycle (Up)"))
	assert.Equal(t, "Plain", CleanTitle("Plain"))
}

package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/entrhq/tabselect/pkg/config"
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

// openConfigAt reopens the file behind an existing manager.
func openConfigAt(t *testing.T, manager *config.Manager) *config.Manager {
	t.Helper()
	store, ok := manager.Store().(*config.FileStore)
	require.True(t, ok)
	reopened, err := config.Open(store.Path())
	require.NoError(t, err)
	return reopened
}

package config

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSection struct {
	id          string
	data        map[string]any
	validateErr error
}

func (m *mockSection) ID() string           { return m.id }
func (m *mockSection) Title() string        { return m.id }
func (m *mockSection) Description() string  { return "" }
func (m *mockSection) Data() map[string]any { return m.data }
func (m *mockSection) SetData(data map[string]any) error {
	if _, bad := data["bad"]; bad {
		return errors.New("bad data")
	}
	m.data = data
	return nil
}
func (m *mockSection) Validate() error { return m.validateErr }
func (m *mockSection) Reset()          { m.data = map[string]any{} }

type mockStore struct {
	sections map[string]map[string]any
	loadErr  error
	saveErr  error
	saves    int
}

func newMockStore() *mockStore {
	return &mockStore{sections: map[string]map[string]any{}}
}

func (m *mockStore) Load() error { return m.loadErr }

func (m *mockStore) Save() error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	return nil
}

func (m *mockStore) GetSection(id string) (map[string]any, error) {
	if data, ok := m.sections[id]; ok {
		return data, nil
	}
	return map[string]any{}, nil
}

func (m *mockStore) SetSection(id string, data map[string]any) error {
	m.sections[id] = data
	return nil
}

func (m *mockStore) GetAll() (map[string]map[string]any, error) { return m.sections, nil }

func (m *mockStore) SetAll(data map[string]map[string]any) error {
	m.sections = data
	return nil
}

func TestManager_RegisterSection(t *testing.T) {
	t.Run("keeps registration order", func(t *testing.T) {
		manager := NewManager(newMockStore())
		for _, id := range []string{"first", "second", "third"} {
			require.NoError(t, manager.RegisterSection(&mockSection{id: id}))
		}

		var ids []string
		for _, s := range manager.GetSections() {
			ids = append(ids, s.ID())
		}
		assert.Equal(t, []string{"first", "second", "third"}, ids)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		manager := NewManager(newMockStore())
		require.NoError(t, manager.RegisterSection(&mockSection{id: "dup"}))
		assert.Error(t, manager.RegisterSection(&mockSection{id: "dup"}))
		assert.Len(t, manager.GetSections(), 1)
	})

	t.Run("lookup", func(t *testing.T) {
		manager := NewManager(newMockStore())
		require.NoError(t, manager.RegisterSection(&mockSection{id: "test"}))

		section, ok := manager.GetSection("test")
		require.True(t, ok)
		assert.Equal(t, "test", section.ID())

		_, ok = manager.GetSection("missing")
		assert.False(t, ok)
	})
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("hands stored data to sections", func(t *testing.T) {
		store := newMockStore()
		store.sections["a"] = map[string]any{"key": "a"}
		store.sections["b"] = map[string]any{"key": "b"}

		manager := NewManager(store)
		a := &mockSection{id: "a"}
		b := &mockSection{id: "b"}
		require.NoError(t, manager.RegisterSection(a))
		require.NoError(t, manager.RegisterSection(b))

		require.NoError(t, manager.LoadAll())
		assert.Equal(t, "a", a.data["key"])
		assert.Equal(t, "b", b.data["key"])
	})

	t.Run("leaves sections without stored data alone", func(t *testing.T) {
		manager := NewManager(newMockStore())
		section := &mockSection{id: "a", data: map[string]any{"default": true}}
		require.NoError(t, manager.RegisterSection(section))

		require.NoError(t, manager.LoadAll())
		assert.Equal(t, true, section.data["default"])
	})

	t.Run("propagates store errors", func(t *testing.T) {
		store := newMockStore()
		store.loadErr = errors.New("disk gone")
		assert.Error(t, NewManager(store).LoadAll())
	})
}

func TestManager_SaveAll(t *testing.T) {
	t.Run("writes every section", func(t *testing.T) {
		store := newMockStore()
		manager := NewManager(store)
		require.NoError(t, manager.RegisterSection(&mockSection{id: "a", data: map[string]any{"k": 1}}))
		require.NoError(t, manager.RegisterSection(&mockSection{id: "b", data: map[string]any{"k": 2}}))

		require.NoError(t, manager.SaveAll())
		assert.Equal(t, 1, store.sections["a"]["k"])
		assert.Equal(t, 2, store.sections["b"]["k"])
		assert.Equal(t, 1, store.saves)
	})

	t.Run("validates before writing", func(t *testing.T) {
		store := newMockStore()
		manager := NewManager(store)
		require.NoError(t, manager.RegisterSection(&mockSection{id: "a", validateErr: errors.New("bad")}))

		assert.Error(t, manager.SaveAll())
		assert.Zero(t, store.saves)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		store := newMockStore()
		store.saveErr = errors.New("read-only")
		manager := NewManager(store)
		require.NoError(t, manager.RegisterSection(&mockSection{id: "a"}))
		assert.Error(t, manager.SaveAll())
	})
}

func TestManager_Reload(t *testing.T) {
	store := newMockStore()
	manager := NewManager(store)
	section := &mockSection{id: "a", data: map[string]any{"stale": true}}
	require.NoError(t, manager.RegisterSection(section))

	store.sections["a"] = map[string]any{"fresh": true}
	require.NoError(t, manager.Reload())

	assert.Equal(t, map[string]any{"fresh": true}, section.data)
}

func TestManager_ReloadFailureKeepsSettings(t *testing.T) {
	t.Run("store error", func(t *testing.T) {
		store := newMockStore()
		manager := NewManager(store)
		section := &mockSection{id: "a", data: map[string]any{"k": "v"}}
		require.NoError(t, manager.RegisterSection(section))

		store.loadErr = errors.New("corrupt")
		assert.Error(t, manager.Reload())
		assert.Equal(t, map[string]any{"k": "v"}, section.data)
	})

	t.Run("section rejects data", func(t *testing.T) {
		store := newMockStore()
		manager := NewManager(store)
		a := &mockSection{id: "a", data: map[string]any{"k": "a"}}
		b := &mockSection{id: "b", data: map[string]any{"k": "b"}}
		require.NoError(t, manager.RegisterSection(a))
		require.NoError(t, manager.RegisterSection(b))

		store.sections["a"] = map[string]any{"k": "new"}
		store.sections["b"] = map[string]any{"bad": true}
		assert.Error(t, manager.Reload())
		assert.Equal(t, map[string]any{"k": "a"}, a.data)
		assert.Equal(t, map[string]any{"k": "b"}, b.data)
	})
}

func TestManager_ResetAll(t *testing.T) {
	manager := NewManager(newMockStore())
	a := &mockSection{id: "a", data: map[string]any{"k": 1}}
	require.NoError(t, manager.RegisterSection(a))

	manager.ResetAll()
	assert.Empty(t, a.data)
}

func TestManager_ConcurrentRegistration(t *testing.T) {
	manager := NewManager(newMockStore())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = manager.RegisterSection(&mockSection{id: fmt.Sprintf("section%d", i)})
			manager.GetSections()
		}(i)
	}
	wg.Wait()

	assert.Len(t, manager.GetSections(), 10)
}

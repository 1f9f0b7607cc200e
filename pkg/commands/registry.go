package commands

import (
	"errors"
	"fmt"
	"sync"

	"github.com/entrhq/tabselect/pkg/config"
	"github.com/entrhq/tabselect/pkg/logging"
)

// ErrUnknownCommand is returned for ids missing from the catalog.
var ErrUnknownCommand = errors.New("unknown command")

var debugLog *logging.Logger

func init() {
	var err error
	debugLog, err = logging.NewLogger("commands")
	if err != nil {
		debugLog.Warnf("Failed to initialize commands logger, using stderr fallback: %v", err)
	}
}

// Group is the commands of one category, in catalog order.
type Group struct {
	Category string
	Commands []Command
}

// Settings are the general preferences resolved at load time.
type Settings struct {
	VerticalTabs bool
	ShiftMerge   bool
}

// snapshot is immutable once built.
type snapshot struct {
	root     Command
	commands []Command
	byID     map[string]int
	settings Settings
}

// Registry is the catalog merged with user preferences. Readers always see
// a complete snapshot; Reload swaps in a new one.
type Registry struct {
	manager *config.Manager
	mu      sync.RWMutex
	current *snapshot
}

// Load builds a registry from the catalog and the preferences already
// loaded into manager. A nil manager yields the catalog defaults.
func Load(manager *config.Manager) *Registry {
	r := &Registry{manager: manager}
	r.rebuild()
	return r
}

// Reload re-reads the preferences from the manager's store and rebuilds.
func (r *Registry) Reload() error {
	if r.manager != nil {
		if err := r.manager.Reload(); err != nil {
			return fmt.Errorf("failed to reload preferences: %w", err)
		}
	}
	r.rebuild()
	return nil
}

func (r *Registry) rebuild() {
	snap := build(r.manager)
	r.mu.Lock()
	r.current = snap
	r.mu.Unlock()
	debugLog.Debugf("loaded %d commands (vertical=%t shiftMerge=%t)",
		len(snap.commands), snap.settings.VerticalTabs, snap.settings.ShiftMerge)
}

func build(manager *config.Manager) *snapshot {
	snap := &snapshot{
		root:     Root(),
		commands: Catalog(),
		byID:     make(map[string]int, len(catalog)),
		settings: Settings{ShiftMerge: true},
	}
	for i, c := range snap.commands {
		snap.byID[c.ID] = i
	}
	if manager == nil {
		return snap
	}

	if general := config.General(manager); general != nil {
		snap.settings.VerticalTabs, snap.settings.ShiftMerge = general.Settings()
	}

	prefs := config.Commands(manager)
	if prefs == nil {
		return snap
	}
	for _, id := range prefs.IDs() {
		p, _ := prefs.Prefs(id)
		switch {
		case id == RootID:
			applyPrefs(&snap.root, p)
		case hasID(snap, id):
			applyPrefs(&snap.commands[snap.byID[id]], p)
		default:
			debugLog.Warnf("ignoring preferences for unknown command %q", id)
		}
	}
	return snap
}

func hasID(snap *snapshot, id string) bool {
	_, ok := snap.byID[id]
	return ok
}

func applyPrefs(c *Command, p config.CommandPrefs) {
	// Menu visibility only exists for commands in the tab menu.
	if p.ShowInTabMenu != nil && c.HasContext(ContextTab) {
		c.ShowInTabMenu = *p.ShowInTabMenu
	}
	if p.AccessKey != nil {
		c.AccessKey = *p.AccessKey
	}
	if p.Shortcut != nil {
		c.Shortcut = *p.Shortcut
	}
}

func (r *Registry) snapshot() *snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Lookup returns the command with the given id, with titles resolved for
// the configured strip orientation.
func (r *Registry) Lookup(id string) (Command, error) {
	snap := r.snapshot()
	if id == RootID {
		return snap.root.clone(), nil
	}
	i, ok := snap.byID[id]
	if !ok {
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	return snap.resolve(snap.commands[i]), nil
}

// Root returns the root menu entry.
func (r *Registry) Root() Command {
	return r.snapshot().root.clone()
}

// All returns every command in catalog order.
func (r *Registry) All() []Command {
	snap := r.snapshot()
	out := make([]Command, len(snap.commands))
	for i, c := range snap.commands {
		out[i] = snap.resolve(c)
	}
	return out
}

// ByCategory returns the commands grouped by category, in catalog order.
func (r *Registry) ByCategory() []Group {
	var groups []Group
	for _, c := range r.All() {
		if n := len(groups); n > 0 && groups[n-1].Category == c.Category {
			groups[n-1].Commands = append(groups[n-1].Commands, c)
			continue
		}
		groups = append(groups, Group{Category: c.Category, Commands: []Command{c}})
	}
	return groups
}

// Settings returns the general preferences.
func (r *Registry) Settings() Settings {
	return r.snapshot().settings
}

// SetPref changes one preference of a command and rebuilds. The change is
// not persisted until the manager's SaveAll.
func (r *Registry) SetPref(id, key, value string) error {
	c, err := r.Lookup(id)
	if err != nil {
		return err
	}
	if r.manager == nil {
		return errors.New("registry has no configuration to update")
	}
	prefs := config.Commands(r.manager)
	if prefs == nil {
		return fmt.Errorf("configuration has no %s section", config.SectionIDCommands)
	}
	if key == config.KeyShowInTabMenu && !c.HasContext(ContextTab) {
		return fmt.Errorf("command %s is not in the tab menu", id)
	}
	if err := prefs.Set(id, key, value); err != nil {
		return fmt.Errorf("command %s: %w", id, err)
	}
	r.rebuild()
	return nil
}

// resolve returns an independent copy of c titled for the strip orientation.
func (s *snapshot) resolve(c Command) Command {
	c = c.clone()
	c.Title = c.DisplayTitle(s.settings.VerticalTabs)
	return c
}

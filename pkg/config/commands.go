package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

const (
	// SectionIDCommands is the identifier for the command preferences section
	SectionIDCommands = "commands"

	KeyShowInTabMenu = "show_in_tab_menu"
	KeyAccessKey     = "access_key"
	KeyShortcut      = "shortcut"
)

// CommandPrefs holds the user-editable properties of one command. Nil fields
// were never set and fall back to the command's defaults.
type CommandPrefs struct {
	ShowInTabMenu *bool
	AccessKey     *string
	Shortcut      *string
}

func (p CommandPrefs) empty() bool {
	return p.ShowInTabMenu == nil && p.AccessKey == nil && p.Shortcut == nil
}

func (p CommandPrefs) data() map[string]any {
	out := map[string]any{}
	if p.ShowInTabMenu != nil {
		out[KeyShowInTabMenu] = *p.ShowInTabMenu
	}
	if p.AccessKey != nil {
		out[KeyAccessKey] = *p.AccessKey
	}
	if p.Shortcut != nil {
		out[KeyShortcut] = *p.Shortcut
	}
	return out
}

// CommandsSection stores per-command preferences keyed by command id.
type CommandsSection struct {
	prefs map[string]CommandPrefs
	mu    sync.RWMutex
}

// NewCommandsSection creates an empty commands section.
func NewCommandsSection() *CommandsSection {
	return &CommandsSection{prefs: make(map[string]CommandPrefs)}
}

// ID returns the section identifier.
func (s *CommandsSection) ID() string {
	return SectionIDCommands
}

// Title returns the section title.
func (s *CommandsSection) Title() string {
	return "Commands"
}

// Description returns the section description.
func (s *CommandsSection) Description() string {
	return "Menu visibility, access keys and keyboard shortcuts of selection commands."
}

// Data returns the stored preferences, omitting commands with none set.
func (s *CommandsSection) Data() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]any, len(s.prefs))
	for id, p := range s.prefs {
		if !p.empty() {
			out[id] = p.data()
		}
	}
	return out
}

// SetData replaces all preferences from stored data.
func (s *CommandsSection) SetData(data map[string]any) error {
	if data == nil {
		return nil
	}

	prefs := make(map[string]CommandPrefs, len(data))
	for id, raw := range data {
		fields, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("invalid preferences for %s: expected map, got %T", id, raw)
		}
		var p CommandPrefs
		for key, value := range fields {
			if err := p.set(key, value); err != nil {
				return fmt.Errorf("command %s: %w", id, err)
			}
		}
		prefs[id] = p
	}

	s.mu.Lock()
	s.prefs = prefs
	s.mu.Unlock()
	return nil
}

func (p *CommandPrefs) set(key string, value any) error {
	switch key {
	case KeyShowInTabMenu:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("invalid value type for %s: expected bool, got %T", key, value)
		}
		p.ShowInTabMenu = &v
	case KeyAccessKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("invalid value type for %s: expected string, got %T", key, value)
		}
		v = strings.ToLower(v)
		p.AccessKey = &v
	case KeyShortcut:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("invalid value type for %s: expected string, got %T", key, value)
		}
		p.Shortcut = &v
	}
	return nil
}

// Validate checks every access key and shortcut.
func (s *CommandsSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.sortedIDs() {
		p := s.prefs[id]
		if p.AccessKey != nil {
			if err := ValidateAccessKey(*p.AccessKey); err != nil {
				return fmt.Errorf("command %s: %w", id, err)
			}
		}
		if p.Shortcut != nil {
			if err := ValidateShortcut(*p.Shortcut); err != nil {
				return fmt.Errorf("command %s: %w", id, err)
			}
		}
	}
	return nil
}

// Reset forgets every preference.
func (s *CommandsSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = make(map[string]CommandPrefs)
}

// Prefs returns the preferences stored for a command.
func (s *CommandsSection) Prefs(id string) (CommandPrefs, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.prefs[id]
	return p, ok
}

// SetPrefs replaces the preferences of a command.
func (s *CommandsSection) SetPrefs(id string, p CommandPrefs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.empty() {
		delete(s.prefs, id)
		return
	}
	s.prefs[id] = p
}

// Set parses a textual value for one preference key, as typed on a command
// line, and stores it.
func (s *CommandsSection) Set(id, key, value string) error {
	var parsed any = value
	switch key {
	case KeyShowInTabMenu:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		parsed = b
	case KeyAccessKey:
		if err := ValidateAccessKey(value); err != nil {
			return err
		}
	case KeyShortcut:
		if err := ValidateShortcut(value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown preference %q", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.prefs[id]
	if err := p.set(key, parsed); err != nil {
		return err
	}
	s.prefs[id] = p
	return nil
}

// IDs returns the ids of commands with stored preferences, sorted.
func (s *CommandsSection) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedIDs()
}

func (s *CommandsSection) sortedIDs() []string {
	ids := make([]string, 0, len(s.prefs))
	for id := range s.prefs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ValidateAccessKey accepts an empty key or a single character.
func ValidateAccessKey(key string) error {
	if n := utf8.RuneCountInString(key); n > 1 {
		return fmt.Errorf("access key %q must be a single character", key)
	}
	return nil
}

var (
	shortcutModifiers = map[string]bool{"Alt": true, "Ctrl": true, "Command": true, "MacCtrl": true}
	shortcutNamedKeys = map[string]bool{
		"Comma": true, "Period": true, "Home": true, "End": true,
		"PageUp": true, "PageDown": true, "Space": true, "Insert": true,
		"Delete": true, "Up": true, "Down": true, "Left": true, "Right": true,
	}
)

// ValidateShortcut accepts an empty shortcut or one of the forms
// "Modifier+Key" and "Modifier+Shift+Key", where Modifier is Alt, Ctrl,
// Command or MacCtrl. A function key may also stand alone.
func ValidateShortcut(shortcut string) error {
	if shortcut == "" {
		return nil
	}
	parts := strings.Split(shortcut, "+")
	key := parts[len(parts)-1]
	if !validShortcutKey(key) {
		return fmt.Errorf("shortcut %q has invalid key %q", shortcut, key)
	}

	mods := parts[:len(parts)-1]
	if len(mods) == 0 {
		if isFunctionKey(key) {
			return nil
		}
		return fmt.Errorf("shortcut %q needs a modifier", shortcut)
	}
	if len(mods) > 2 {
		return fmt.Errorf("shortcut %q has too many modifiers", shortcut)
	}

	seen := map[string]bool{}
	primary := false
	for _, m := range mods {
		switch {
		case seen[m]:
			return fmt.Errorf("shortcut %q repeats modifier %q", shortcut, m)
		case shortcutModifiers[m]:
			primary = true
		case m == "Shift":
		default:
			return fmt.Errorf("shortcut %q has invalid modifier %q", shortcut, m)
		}
		seen[m] = true
	}
	if !primary {
		return fmt.Errorf("shortcut %q needs Alt, Ctrl, Command or MacCtrl", shortcut)
	}
	return nil
}

func validShortcutKey(key string) bool {
	if len(key) == 1 {
		c := key[0]
		return c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
	}
	return shortcutNamedKeys[key] || isFunctionKey(key)
}

func isFunctionKey(key string) bool {
	if !strings.HasPrefix(key, "F") {
		return false
	}
	n, err := strconv.Atoi(key[1:])
	return err == nil && n >= 1 && n <= 12
}

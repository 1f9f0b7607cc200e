package config

import (
	"fmt"
	"sync"
)

const (
	// SectionIDGeneral is the identifier for the general settings section
	SectionIDGeneral = "general"

	defaultVerticalTabs = false
	defaultShiftMerge   = true
)

// GeneralSection holds settings that apply to every command.
type GeneralSection struct {
	// VerticalTabs switches command titles to their vertical-strip variants
	VerticalTabs bool `json:"vertical_tabs"`

	// ShiftMerge adds a command's tabs to the prior selection when Shift
	// is held
	ShiftMerge bool `json:"shift_merge"`

	mu sync.RWMutex
}

// NewGeneralSection creates a general section with default settings.
func NewGeneralSection() *GeneralSection {
	return &GeneralSection{
		VerticalTabs: defaultVerticalTabs,
		ShiftMerge:   defaultShiftMerge,
	}
}

// ID returns the section identifier.
func (s *GeneralSection) ID() string {
	return SectionIDGeneral
}

// Title returns the section title.
func (s *GeneralSection) Title() string {
	return "General"
}

// Description returns the section description.
func (s *GeneralSection) Description() string {
	return "Tab strip orientation and Shift-click merging."
}

// Data returns the current configuration data.
func (s *GeneralSection) Data() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]any{
		"vertical_tabs": s.VerticalTabs,
		"shift_merge":   s.ShiftMerge,
	}
}

// SetData updates the configuration from the provided data.
func (s *GeneralSection) SetData(data map[string]any) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		switch key {
		case "vertical_tabs":
			enabled, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value type for vertical_tabs: expected bool, got %T", value)
			}
			s.VerticalTabs = enabled
		case "shift_merge":
			enabled, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value type for shift_merge: expected bool, got %T", value)
			}
			s.ShiftMerge = enabled
		default:
			// Ignore unknown keys for forward compatibility
			continue
		}
	}
	return nil
}

// Validate has nothing to check; both settings are plain flags.
func (s *GeneralSection) Validate() error {
	return nil
}

// Reset resets the section to default configuration.
func (s *GeneralSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.VerticalTabs = defaultVerticalTabs
	s.ShiftMerge = defaultShiftMerge
}

// Settings returns (verticalTabs, shiftMerge).
func (s *GeneralSection) Settings() (bool, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.VerticalTabs, s.ShiftMerge
}

// Package config persists user preferences as named sections in a single
// JSON file.
package config

// Section is one named group of settings. Data and SetData exchange the
// JSON-decoded form, so numbers arrive as float64 and lists as []any.
type Section interface {
	// ID returns the key the section is stored under
	ID() string

	// Title returns a human readable name
	Title() string

	// Description explains what the section configures
	Description() string

	// Data returns the current settings
	Data() map[string]any

	// SetData replaces settings from stored data. Unknown keys are ignored.
	SetData(data map[string]any) error

	// Validate checks the current settings
	Validate() error

	// Reset restores the defaults
	Reset()
}

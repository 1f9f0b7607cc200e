// Package commands defines the selection commands: their getters, menu
// placement and the per-command policy the selector applies.
package commands

import (
	"github.com/entrhq/tabselect/pkg/getters"
)

// Context is a place a command can be invoked from.
type Context string

const (
	ContextTab       Context = "tab"
	ContextLink      Context = "link"
	ContextSelection Context = "selection"
)

// Policy is a set of flags changing how the selector treats a command's
// result.
type Policy uint8

const (
	// PinAgnostic keeps pinned tabs in the result.
	PinAgnostic Policy = 1 << iota

	// FocusOpener focuses the target's opener when it is in the result.
	FocusOpener

	// InvertSelection keeps pinned tabs when the prior selection appears to
	// have included one.
	InvertSelection
)

// Has reports whether every flag in flags is set.
func (p Policy) Has(flags Policy) bool {
	return p&flags == flags
}

// Command is one selection command.
type Command struct {
	ID       string
	Category string
	Title    string

	// AltTitle replaces Title when the tab strip is vertical
	AltTitle string

	Contexts []Context
	Policy   Policy
	Getter   getters.Getter

	// User-editable; catalog values are the defaults
	ShowInTabMenu bool
	AccessKey     string
	Shortcut      string
}

// HasContext reports whether the command can be invoked from ctx.
func (c Command) HasContext(ctx Context) bool {
	for _, have := range c.Contexts {
		if have == ctx {
			return true
		}
	}
	return false
}

// DisplayTitle picks the title for the given strip orientation.
func (c Command) DisplayTitle(vertical bool) string {
	if vertical && c.AltTitle != "" {
		return c.AltTitle
	}
	return c.Title
}

func (c Command) clone() Command {
	c.Contexts = append([]Context(nil), c.Contexts...)
	return c
}

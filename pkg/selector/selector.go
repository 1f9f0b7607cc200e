package selector

import (
	"context"
	"fmt"
	"time"

	"github.com/entrhq/tabselect/pkg/commands"
	"github.com/entrhq/tabselect/pkg/getters"
	"github.com/entrhq/tabselect/pkg/logging"
	"github.com/entrhq/tabselect/pkg/tabs"
)

// ModifierShift is the modifier that merges a result into the selection.
const ModifierShift = "Shift"

var debugLog *logging.Logger

func init() {
	var err error
	debugLog, err = logging.NewLogger("selector")
	if err != nil {
		debugLog.Warnf("Failed to initialize selector logger, using stderr fallback: %v", err)
	}
}

// Outcome reports what a command did.
type Outcome struct {
	Command commands.Command

	// Indices are the highlighted tab indices; the first one has focus
	Indices []int

	// Focused is the index of the focused tab, -1 when aborted
	Focused int

	// Aborted is set when the command left the selection unchanged
	Aborted bool
}

// Selector runs commands against a host. It keeps no state between runs.
type Selector struct {
	Host     tabs.Host
	Registry *commands.Registry

	// Now is passed to getters; nil means time.Now
	Now func() time.Time
}

// New creates a selector.
func New(host tabs.Host, registry *commands.Registry) *Selector {
	return &Selector{Host: host, Registry: registry}
}

// SelectTabs runs a command on target, as if invoked from a menu opened on
// it, and highlights the result.
func (s *Selector) SelectTabs(ctx context.Context, commandID string, target tabs.Tab, trigger getters.Trigger) (Outcome, error) {
	cmd, err := s.Registry.Lookup(commandID)
	if err != nil {
		return Outcome{}, err
	}
	if cmd.Getter == nil {
		return Outcome{}, fmt.Errorf("command %s does not select tabs", commandID)
	}
	aborted := Outcome{Command: cmd, Focused: -1, Aborted: true}

	debugLog.Debugf("running %s on tab %d (index %d)", cmd.ID, target.ID, target.Index)
	candidates, err := cmd.Getter(ctx, &getters.Query{
		Host:    s.Host,
		Target:  target,
		Trigger: trigger,
		Now:     s.Now,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("command %s: %w", cmd.ID, err)
	}
	if len(candidates) == 0 {
		debugLog.Debugf("%s: nothing to select", cmd.ID)
		return aborted, nil
	}

	shift := trigger.HasModifier(ModifierShift) && s.Registry.Settings().ShiftMerge
	var prior []tabs.Tab
	if shift {
		prior, err = s.Host.QueryTabs(ctx, tabs.Filter{Highlighted: tabs.Bool(true)})
		if err != nil {
			return Outcome{}, fmt.Errorf("failed to read current selection: %w", err)
		}
	}

	list := Normalize(cmd.Policy, target, candidates, prior, shift)
	if len(list) == 0 {
		debugLog.Debugf("%s: only pinned tabs matched", cmd.ID)
		return aborted, nil
	}

	indices := tabs.Indices(list)
	if err := s.Host.HighlightTabs(ctx, indices); err != nil {
		return Outcome{}, fmt.Errorf("failed to highlight tabs: %w", err)
	}
	debugLog.Infof("%s: highlighted %v", cmd.ID, indices)

	return Outcome{Command: cmd, Indices: indices, Focused: indices[0]}, nil
}

// SelectFocused runs a command on the active tab, as a keyboard shortcut
// does. A window without an active tab aborts.
func (s *Selector) SelectFocused(ctx context.Context, commandID string, trigger getters.Trigger) (Outcome, error) {
	active, err := s.Host.QueryTabs(ctx, tabs.Filter{Active: tabs.Bool(true)})
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to find active tab: %w", err)
	}
	if len(active) == 0 {
		cmd, err := s.Registry.Lookup(commandID)
		if err != nil {
			return Outcome{}, err
		}
		debugLog.Warnf("%s: no active tab", commandID)
		return Outcome{Command: cmd, Focused: -1, Aborted: true}, nil
	}
	return s.SelectTabs(ctx, commandID, active[0], trigger)
}

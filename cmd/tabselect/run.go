package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/entrhq/tabselect/pkg/browser"
	"github.com/entrhq/tabselect/pkg/commands"
	"github.com/entrhq/tabselect/pkg/config"
	"github.com/entrhq/tabselect/pkg/getters"
	"github.com/entrhq/tabselect/pkg/logging"
	"github.com/entrhq/tabselect/pkg/menu"
	"github.com/entrhq/tabselect/pkg/selector"
	"github.com/entrhq/tabselect/pkg/tabs"
	"github.com/entrhq/tabselect/pkg/ui"
)

var debugLog *logging.Logger

func init() {
	var err error
	debugLog, err = logging.NewLogger("cli")
	if err != nil {
		debugLog.Warnf("failed to initialize logger: %v", err)
	}
}

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// run executes the requested mode
func run(ctx context.Context, cfg *Config, out io.Writer) error {
	manager, err := config.Open(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	registry := commands.Load(manager)

	switch {
	case cfg.List:
		fmt.Fprint(out, ui.RenderCommands(registry.ByCategory()))
		return nil
	case cfg.Menu:
		fmt.Fprintln(out, ui.RenderMenu(menu.Build(registry, menu.DefaultOptions())))
		return nil
	case cfg.SetPref != "":
		return setPref(manager, registry, cfg.SetPref, out)
	}

	if cfg.Snapshot != "" {
		return runSnapshot(ctx, cfg, registry, out)
	}
	return runBrowser(ctx, cfg, registry, out)
}

func setPref(manager *config.Manager, registry *commands.Registry, arg string, out io.Writer) error {
	p, err := parsePref(arg)
	if err != nil {
		return err
	}
	if err := registry.SetPref(p.id, p.key, p.value); err != nil {
		return err
	}
	if err := manager.SaveAll(); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	debugLog.Infof("set %s:%s=%s", p.id, p.key, p.value)
	fmt.Fprintf(out, "%s: %s = %s\n", p.id, p.key, p.value)
	return nil
}

func runSnapshot(ctx context.Context, cfg *Config, registry *commands.Registry, out io.Writer) error {
	snap, err := tabs.LoadSnapshot(cfg.Snapshot)
	if err != nil {
		return err
	}
	host := tabs.NewMemoryHost(snap.Tabs)

	if err := selectAndReport(ctx, cfg, host, registry, out); err != nil {
		return err
	}

	if cfg.Write {
		snap.Tabs = host.Tabs()
		if err := tabs.SaveSnapshot(cfg.Snapshot, snap); err != nil {
			return err
		}
	}
	return nil
}

func runBrowser(ctx context.Context, cfg *Config, registry *commands.Registry, out io.Writer) error {
	manager := browser.NewManager()
	if err := manager.Connect(cfg.CDPEndpoint, browser.ConnectOptions{}); err != nil {
		return err
	}
	defer func() {
		if err := manager.Shutdown(); err != nil {
			debugLog.Warnf("shutdown: %v", err)
		}
	}()

	window, err := manager.Window(cfg.WindowIndex)
	if err != nil {
		return err
	}
	return selectAndReport(ctx, cfg, window, registry, out)
}

// selectAndReport runs the command and prints the window afterwards.
// Without a target the command runs on the active tab, as a shortcut does.
func selectAndReport(ctx context.Context, cfg *Config, host tabs.Host, registry *commands.Registry, out io.Writer) error {
	trigger := getters.Trigger{LinkText: cfg.LinkText, SelectionText: cfg.SelectionText}
	if cfg.Shift {
		trigger.Modifiers = append(trigger.Modifiers, selector.ModifierShift)
	}

	s := selector.New(host, registry)
	var outcome selector.Outcome
	if cfg.Target == 0 {
		var err error
		if outcome, err = s.SelectFocused(ctx, cfg.Command, trigger); err != nil {
			return err
		}
	} else {
		target, err := host.GetTab(ctx, cfg.Target)
		if err != nil {
			return err
		}
		if outcome, err = s.SelectTabs(ctx, cfg.Command, target, trigger); err != nil {
			return err
		}
	}

	window, err := host.QueryTabs(ctx, tabs.Filter{})
	if err != nil {
		return fmt.Errorf("failed to read window: %w", err)
	}

	if outcome.Aborted {
		fmt.Fprintf(out, "%s: nothing selected\n", outcome.Command.Title)
	} else {
		fmt.Fprintf(out, "%s\n", outcome.Command.Title)
	}
	fmt.Fprint(out, ui.RenderStrip(window, cfg.Width))
	fmt.Fprintln(out, ui.RenderSummary(window))

	if cfg.Copy && !outcome.Aborted {
		if err := copyToClipboard(selectedURLs(window)); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}
	return nil
}

func selectedURLs(window []tabs.Tab) string {
	var urls []string
	for _, t := range window {
		if t.Highlighted {
			urls = append(urls, t.EffectiveURL())
		}
	}
	return strings.Join(urls, "\n")
}

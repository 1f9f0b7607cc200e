// Package main provides the tabselect command line tool. It runs tab
// selection commands against a saved window snapshot or a live Chromium
// browser, and manages the command preferences.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/entrhq/tabselect/pkg/browser"
	"github.com/entrhq/tabselect/pkg/logging"
)

const version = "0.1.0"

// Config holds the command line configuration
type Config struct {
	ConfigPath    string
	Snapshot      string
	CDPEndpoint   string
	WindowIndex   int
	Command       string
	Target        int
	Shift         bool
	LinkText      string
	SelectionText string
	Write         bool
	Copy          bool
	List          bool
	Menu          bool
	SetPref       string
	Width         int
	ShowVersion   bool
}

// pref is a parsed -set-pref argument.
type pref struct {
	id, key, value string
}

func main() {
	config, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if config.ShowVersion {
		fmt.Printf("tabselect v%s\n", version)
		return
	}

	if err := config.validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if runErr := run(ctx, config, os.Stdout); runErr != nil {
		cancel()
		log.Fatalf("Error: %v\n%s", runErr, logHint())
	}
	cancel()
}

// parseFlags parses the command line into a Config
func parseFlags(args []string, output io.Writer) (*Config, error) {
	config := &Config{}
	fs := flag.NewFlagSet("tabselect", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&config.ConfigPath, "config", os.Getenv("TABSELECT_CONFIG"), "Path to the preferences file (default: ~/.tabselect/config.json)")
	fs.StringVar(&config.Snapshot, "snapshot", "", "Window snapshot to run against (YAML or JSON)")
	fs.StringVar(&config.CDPEndpoint, "cdp", "", "Chrome DevTools endpoint of a live browser, e.g. "+browser.DefaultEndpoint)
	fs.IntVar(&config.WindowIndex, "window", 0, "Browser context to use with -cdp")
	fs.StringVar(&config.Command, "command", "", "Command id to run")
	fs.IntVar(&config.Target, "target", 0, "Id of the tab the menu was opened on (default: the active tab)")
	fs.BoolVar(&config.Shift, "shift", false, "Hold Shift: add to the current selection")
	fs.StringVar(&config.LinkText, "link-text", "", "Text of the link the menu was opened on")
	fs.StringVar(&config.SelectionText, "selection-text", "", "Selected page text")
	fs.BoolVar(&config.Write, "write", false, "Save the new selection back to the snapshot")
	fs.BoolVar(&config.Copy, "copy", false, "Copy the selected tabs' URLs to the clipboard")
	fs.BoolVar(&config.List, "list", false, "List commands by category")
	fs.BoolVar(&config.Menu, "menu", false, "Show the context menu")
	fs.StringVar(&config.SetPref, "set-pref", "", "Set a command preference: id:key=value")
	fs.IntVar(&config.Width, "width", 0, "Maximum width of rendered lines (0: unlimited)")
	fs.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")

	fs.Usage = func() {
		fmt.Fprintf(output, "tabselect - select related browser tabs\n\n")
		fmt.Fprintf(output, "Usage: tabselect [options]\n\n")
		fmt.Fprintf(output, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(output, "\nExamples:\n")
		fmt.Fprintf(output, "  tabselect -snapshot window.yaml -command sameSite\n")
		fmt.Fprintf(output, "  tabselect -snapshot window.yaml -command descendants -target 4 -shift -write\n")
		fmt.Fprintf(output, "  tabselect -cdp %s -command duplicates -copy\n", browser.DefaultEndpoint)
		fmt.Fprintf(output, "  tabselect -list\n")
		fmt.Fprintf(output, "  tabselect -set-pref siblings:show_in_tab_menu=true\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(output, err)
		return nil, err
	}
	return config, nil
}

// validate checks that exactly one mode is requested and its inputs are present
func (c *Config) validate() error {
	modes := 0
	for _, on := range []bool{c.Command != "", c.List, c.Menu, c.SetPref != ""} {
		if on {
			modes++
		}
	}
	switch {
	case modes == 0:
		return fmt.Errorf("nothing to do: use -command, -list, -menu or -set-pref")
	case modes > 1:
		return fmt.Errorf("-command, -list, -menu and -set-pref are mutually exclusive")
	}

	if c.SetPref != "" {
		if _, err := parsePref(c.SetPref); err != nil {
			return err
		}
	}

	if c.Command == "" {
		return nil
	}
	if (c.Snapshot == "") == (c.CDPEndpoint == "") {
		return fmt.Errorf("-command needs exactly one of -snapshot or -cdp")
	}
	if c.Write && c.Snapshot == "" {
		return fmt.Errorf("-write requires -snapshot")
	}
	if c.Target < 0 {
		return fmt.Errorf("invalid target tab id %d", c.Target)
	}
	if c.WindowIndex < 0 {
		return fmt.Errorf("invalid window %d", c.WindowIndex)
	}
	if c.Width < 0 {
		return fmt.Errorf("invalid width %d", c.Width)
	}
	return nil
}

// logHint points at the debug log of this run.
func logHint() string {
	dir, err := logging.GetLogDirectory()
	if err != nil {
		return fmt.Sprintf("Debug log unavailable: %v", err)
	}
	return fmt.Sprintf("Debug log: %s (session %s)", dir, logging.GetSessionID())
}

// parsePref splits "id:key=value".
func parsePref(s string) (pref, error) {
	id, rest, ok := strings.Cut(s, ":")
	if !ok || id == "" {
		return pref{}, fmt.Errorf("invalid preference %q: expected id:key=value", s)
	}
	key, value, ok := strings.Cut(rest, "=")
	if !ok || key == "" {
		return pref{}, fmt.Errorf("invalid preference %q: expected id:key=value", s)
	}
	return pref{id: id, key: key, value: value}, nil
}

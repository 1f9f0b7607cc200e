package browser

import (
	"fmt"
	"io"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// Manager owns the Playwright driver and the CDP connection.
type Manager struct {
	mu         sync.Mutex
	playwright *playwright.Playwright
	browser    playwright.Browser
	windows    map[int]*Window
}

// NewManager creates a disconnected manager.
func NewManager() *Manager {
	return &Manager{windows: make(map[int]*Window)}
}

// Connect starts the Playwright driver and attaches to the browser at
// endpoint, e.g. http://localhost:9222.
func (m *Manager) Connect(endpoint string, opts ConnectOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.browser != nil {
		return fmt.Errorf("already connected")
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	runOpts := &playwright.RunOptions{
		Verbose:             false,
		Stdout:              io.Discard,
		Stderr:              io.Discard,
		SkipInstallBrowsers: true,
	}
	if opts.Install {
		if err := playwright.Install(runOpts); err != nil {
			return fmt.Errorf("failed to install playwright: %w", err)
		}
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.ConnectOverCDP(endpoint, playwright.BrowserTypeConnectOverCDPOptions{
		Timeout: &opts.Timeout,
	})
	if err != nil {
		_ = pw.Stop()
		return fmt.Errorf("failed to connect to %s: %w", endpoint, err)
	}

	m.playwright = pw
	m.browser = browser
	debugLog.Infof("connected to %s (version %s)", endpoint, browser.Version())
	return nil
}

// WindowCount returns the number of browser contexts.
func (m *Manager) WindowCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.browser == nil {
		return 0
	}
	return len(m.browser.Contexts())
}

// Window returns the window for the browser context at position i. The
// same Window is returned on every call so tab ids stay stable.
func (m *Manager) Window(i int) (*Window, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.browser == nil {
		return nil, fmt.Errorf("not connected")
	}
	if w, ok := m.windows[i]; ok {
		return w, nil
	}
	contexts := m.browser.Contexts()
	if i < 0 || i >= len(contexts) {
		return nil, fmt.Errorf("window %d not found: browser has %d", i, len(contexts))
	}

	w := newWindow(i+1, contexts[i])
	m.windows[i] = w
	return w, nil
}

// Shutdown detaches from the browser, leaving it running, and stops the
// driver.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	if m.browser != nil {
		// Closing a CDP-attached browser only drops the connection.
		if err := m.browser.Close(); err != nil {
			errs = append(errs, err)
		}
		m.browser = nil
	}
	if m.playwright != nil {
		if err := m.playwright.Stop(); err != nil {
			errs = append(errs, err)
		}
		m.playwright = nil
	}
	m.windows = make(map[int]*Window)

	if len(errs) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errs)
	}
	return nil
}

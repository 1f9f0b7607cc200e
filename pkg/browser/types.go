package browser

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

const (
	// DefaultEndpoint is Chromium's default remote debugging address
	DefaultEndpoint = "http://localhost:9222"

	// DefaultTimeout bounds connecting over CDP, in milliseconds
	DefaultTimeout = 30000.0

	// maxConcurrentReads limits parallel page round-trips per snapshot
	maxConcurrentReads = 8
)

// ConnectOptions configures Manager.Connect.
type ConnectOptions struct {
	// Install downloads the Playwright driver before starting it
	Install bool

	// Timeout in milliseconds (0 means DefaultTimeout)
	Timeout float64
}

// pageSource is the part of a browser context a Window reads.
type pageSource interface {
	Pages() []playwright.Page
}

// pageState is what a snapshot learns about one page.
type pageState struct {
	page    playwright.Page
	id      int
	title   string
	url     string
	opener  playwright.Page
	visible bool
}

// clock returns the current time; tests replace it.
type clock func() time.Time

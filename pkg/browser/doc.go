// Package browser exposes the windows of a running Chromium as tab hosts
// through Playwright.
//
// # Connection
//
// A Manager attaches to a browser started with remote debugging enabled:
//
//	chromium --remote-debugging-port=9222
//
// Each browser context becomes a Window, and each of its pages a tab. Tab
// ids are assigned on first sight and stay stable for the life of the
// Window; the opener link comes from the page that opened it.
//
// # Selection
//
// Playwright has no notion of a multi-tab selection, so a Window keeps the
// highlighted set itself. HighlightTabs records the set and brings the
// first tab to the front. Until the first highlight, the visible page is
// taken as the active and only selected tab.
package browser

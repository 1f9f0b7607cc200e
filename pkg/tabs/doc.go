// Package tabs models the browser tabs of a single window and the host
// operations the selection engine needs from the window manager.
//
// Tabs are owned by the host and only observed here. Every read goes through
// a Host, which always answers from current state: nothing in this package
// caches tab metadata between calls.
//
// # Query filters
//
// Filter mirrors the query properties of the WebExtension tabs API. URL
// filters use match patterns:
//
//	*://example.com/*        any http(s)/ws(s) page on example.com
//	https://*.example.com/*  example.com and its subdomains over https
//	file:///*                every local file
//	about:reader?url=*       every reader-mode tab
//
// Ports and fragments are never part of a match, and hosts compare in their
// IDNA ASCII form.
//
// # Hosts
//
// MemoryHost keeps a window in memory and is used for snapshots and tests.
// The browser package provides a Host backed by a live Chromium.
package tabs

package getters

import (
	"context"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/entrhq/tabselect/pkg/tabs"
)

// extensionSchemes hold extension-internal pages, whose host is the
// extension's internal id.
var extensionSchemes = map[string]bool{
	"moz-extension":    true,
	"chrome-extension": true,
}

// Duplicates selects tabs showing the same URL as the target, ignoring port
// and fragment. Reader-mode targets compare by the page they wrap.
func Duplicates(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	u, err := url.Parse(q.Target.EffectiveURL())
	if err != nil || u.Scheme == "" {
		return nil, nil
	}

	var pattern string
	if u.Opaque != "" {
		pattern = u.Scheme + ":" + u.Opaque
	} else {
		pattern = u.Scheme + "://" + u.Hostname() + u.EscapedPath()
		if u.EscapedPath() == "" {
			pattern += "/"
		}
	}
	if u.RawQuery != "" {
		pattern += "?" + u.RawQuery
	}
	if strings.Contains(pattern, "*") {
		// a literal "*" would widen the match
		return exactDuplicates(ctx, q, u)
	}
	return q.Host.QueryTabs(ctx, tabs.Filter{URLs: []string{pattern}})
}

// exactDuplicates compares URLs directly when they cannot be expressed as a
// match pattern.
func exactDuplicates(ctx context.Context, q *Query, target *url.URL) ([]tabs.Tab, error) {
	window, err := q.all(ctx)
	if err != nil {
		return nil, err
	}
	key := duplicateKey(target)
	var out []tabs.Tab
	for _, t := range window {
		if t.IsInReaderMode {
			continue
		}
		if u, err := url.Parse(t.URL); err == nil && duplicateKey(u) == key {
			out = append(out, t)
		}
	}
	return out, nil
}

func duplicateKey(u *url.URL) string {
	if u.Opaque != "" {
		return u.Scheme + ":" + u.Opaque + "?" + u.RawQuery
	}
	return u.Scheme + "://" + strings.ToLower(u.Hostname()) + u.EscapedPath() + "?" + u.RawQuery
}

// SameSite selects tabs on the target's host, including reader-mode tabs
// whose page is on that host. Local files match each other, and extension
// pages match pages of the same extension.
func SameSite(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	u, err := url.Parse(q.Target.EffectiveURL())
	if err != nil || u.Scheme == "" {
		return nil, nil
	}
	scheme := strings.ToLower(u.Scheme)
	host := u.Hostname()

	switch {
	case scheme == "file":
		return q.Host.QueryTabs(ctx, tabs.Filter{URLs: []string{"file:///*"}})
	case extensionSchemes[scheme]:
		return q.Host.QueryTabs(ctx, tabs.Filter{URLs: []string{scheme + "://" + host + "/*"}})
	case host != "":
		return sameHost(ctx, q, host)
	}

	found, err := q.Host.QueryTabs(ctx, tabs.Filter{URLs: []string{scheme + ":*"}})
	if err != nil {
		return nil, err
	}
	var out []tabs.Tab
	for _, t := range found {
		if !t.IsInReaderMode {
			out = append(out, t)
		}
	}
	return out, nil
}

// sameHost reads regular and reader-mode tabs concurrently and joins them.
func sameHost(ctx context.Context, q *Query, host string) ([]tabs.Tab, error) {
	var direct, readers []tabs.Tab
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		direct, err = q.Host.QueryTabs(gctx, tabs.Filter{URLs: []string{"*://" + host + "/*"}})
		return err
	})
	g.Go(func() error {
		var err error
		readers, err = readerTabsOnHost(gctx, q.Host, host)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := append(direct, readers...)
	tabs.SortByIndex(out)
	return tabs.Dedupe(out), nil
}

func readerTabsOnHost(ctx context.Context, host tabs.Host, hostname string) ([]tabs.Tab, error) {
	found, err := host.QueryTabs(ctx, tabs.Filter{URLs: []string{tabs.ReaderPrefix + "*"}})
	if err != nil {
		return nil, err
	}
	want, err := tabs.CompilePattern("*://" + hostname + "/*")
	if err != nil {
		return nil, nil
	}
	var out []tabs.Tab
	for _, t := range found {
		if want.Match(tabs.ReaderURL(t.URL)) {
			out = append(out, t)
		}
	}
	return out, nil
}

// SameSiteCluster selects the run of same-site tabs adjacent to the target.
func SameSiteCluster(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	site, err := SameSite(ctx, q)
	if err != nil {
		return nil, err
	}
	return Cluster(site, q.Target.Index), nil
}

// SameSiteDescendants selects same-site tabs and every descendant of them.
func SameSiteDescendants(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	var site, window []tabs.Tab
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		site, err = SameSite(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		window, err = q.all(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(site) == 0 {
		return nil, nil
	}

	forest := NewForest(window)
	out := append([]tabs.Tab(nil), site...)
	for _, t := range site {
		out = append(out, forest.Descendants(t.ID)...)
	}
	return tabs.Dedupe(out), nil
}

// Cluster returns the tabs of an index-ordered list that form an unbroken
// strip run containing the tab at index. A tab belongs to the run when its
// strip index minus its list position equals that of the anchor tab.
func Cluster(list []tabs.Tab, index int) []tabs.Tab {
	anchor := tabs.FindIndex(list, index)
	if anchor == -1 {
		return nil
	}
	offset := index - anchor

	var out []tabs.Tab
	for i, t := range list {
		if t.Index == i+offset {
			out = append(out, t)
		}
	}
	return out
}

package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/sync/errgroup"

	"github.com/entrhq/tabselect/pkg/logging"
	"github.com/entrhq/tabselect/pkg/tabs"
)

var debugLog *logging.Logger

func init() {
	var err error
	debugLog, err = logging.NewLogger("browser")
	if err != nil {
		debugLog.Warnf("Failed to initialize browser logger, using stderr fallback: %v", err)
	}
}

// Window is one browser context seen as a tab strip. It implements
// tabs.Host.
type Window struct {
	id     int
	source pageSource
	now    clock

	mu           sync.Mutex
	ids          map[playwright.Page]int
	nextID       int
	lastAccessed map[int]time.Time

	// Selection state; selection is nil until the first highlight.
	selection map[int]bool
	activeID  int
}

var _ tabs.Host = (*Window)(nil)

func newWindow(id int, source pageSource) *Window {
	return &Window{
		id:           id,
		source:       source,
		now:          time.Now,
		ids:          make(map[playwright.Page]int),
		nextID:       1,
		lastAccessed: make(map[int]time.Time),
	}
}

// ID returns the window id reported on its tabs.
func (w *Window) ID() int {
	return w.id
}

// QueryTabs returns the tabs matching the filter in strip order.
func (w *Window) QueryTabs(ctx context.Context, filter tabs.Filter) ([]tabs.Tab, error) {
	m, err := filter.Compile()
	if err != nil {
		return nil, err
	}
	list, err := w.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return m.Apply(list), nil
}

// GetTab returns the tab with the given id.
func (w *Window) GetTab(ctx context.Context, id int) (tabs.Tab, error) {
	list, err := w.snapshot(ctx)
	if err != nil {
		return tabs.Tab{}, err
	}
	if i := tabs.FindID(list, id); i != -1 {
		return list[i], nil
	}
	return tabs.Tab{}, fmt.Errorf("tab %d: %w", id, tabs.ErrTabNotFound)
}

// HighlightTabs records the tabs at the given indices as selected and
// brings the first existing one to the front. Indices past the end of the
// strip are ignored; if none remain the selection is unchanged.
func (w *Window) HighlightTabs(ctx context.Context, indices []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pages := w.source.Pages()

	var focus playwright.Page
	selected := make(map[int]bool, len(indices))
	w.mu.Lock()
	for _, index := range indices {
		if index < 0 || index >= len(pages) {
			continue
		}
		if focus == nil {
			focus = pages[index]
		}
		selected[w.idFor(pages[index])] = true
	}
	w.mu.Unlock()
	if focus == nil {
		debugLog.Warnf("window %d: no tab left among indices %v", w.id, indices)
		return nil
	}

	if err := focus.BringToFront(); err != nil {
		return fmt.Errorf("failed to focus tab: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.selection = selected
	w.activeID = w.ids[focus]
	w.lastAccessed[w.activeID] = w.now()
	return nil
}

// snapshot reads every page. Titles, openers and visibility need a round
// trip each, so they are fetched concurrently.
func (w *Window) snapshot(ctx context.Context) ([]tabs.Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pages := w.source.Pages()

	states := make([]pageState, len(pages))
	w.mu.Lock()
	for i, p := range pages {
		states[i] = pageState{page: p, id: w.idFor(p), url: p.URL()}
	}
	w.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i := range states {
		st := &states[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			readPage(st)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.selection == nil {
		w.adoptVisible(states)
	}
	list := make([]tabs.Tab, len(states))
	for i, st := range states {
		list[i] = w.toTab(i, st)
	}
	return list, nil
}

// readPage fills in what needs a round trip. A page closing mid-read is
// reported with what was gathered so far.
func readPage(st *pageState) {
	if title, err := st.page.Title(); err == nil {
		st.title = title
	}
	if opener, err := st.page.Opener(); err == nil {
		st.opener = opener
	}
	if state, err := st.page.Evaluate("() => document.visibilityState"); err == nil {
		st.visible = state == "visible"
	}
}

// adoptVisible takes the first visible page as active before the window's
// first highlight.
func (w *Window) adoptVisible(states []pageState) {
	if len(states) == 0 {
		return
	}
	active := states[0].id
	for _, st := range states {
		if st.visible {
			active = st.id
			break
		}
	}
	w.selection = map[int]bool{active: true}
	w.activeID = active
	if _, ok := w.lastAccessed[active]; !ok {
		w.lastAccessed[active] = w.now()
	}
}

func (w *Window) toTab(index int, st pageState) tabs.Tab {
	t := tabs.Tab{
		ID:             st.id,
		Index:          index,
		WindowID:       w.id,
		Title:          st.title,
		URL:            st.url,
		IsInReaderMode: strings.HasPrefix(st.url, tabs.ReaderPrefix),
		Active:         st.id == w.activeID,
		Highlighted:    w.selection[st.id] || st.id == w.activeID,
		GroupID:        tabs.GroupNone,
		LastAccessed:   w.lastAccessed[st.id],
	}
	if st.opener != nil {
		if id, ok := w.ids[st.opener]; ok {
			t.OpenerTabID = id
		}
	}
	return t
}

// idFor returns the stable id of a page, assigning one on first sight.
// Callers hold w.mu.
func (w *Window) idFor(p playwright.Page) int {
	if id, ok := w.ids[p]; ok {
		return id
	}
	id := w.nextID
	w.nextID++
	w.ids[p] = id
	return id
}

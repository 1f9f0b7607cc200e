package getters

import (
	"context"
	"strings"
	"unicode"

	"github.com/entrhq/tabselect/pkg/tabs"
)

// MatchLinkText selects tabs matching the text of the clicked link.
func MatchLinkText(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	return MatchText(ctx, q, q.Trigger.LinkText)
}

// MatchSelectionText selects tabs matching the selected page text.
func MatchSelectionText(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	return MatchText(ctx, q, q.Trigger.SelectionText)
}

// MatchText selects tabs whose title contains text, ignoring case. Text
// without whitespace also matches against tab URLs, with reader-mode URLs
// unwrapped first. Blank text aborts.
func MatchText(ctx context.Context, q *Query, text string) ([]tabs.Tab, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	needle := strings.ToLower(text)
	checkURL := strings.IndexFunc(needle, unicode.IsSpace) == -1

	window, err := q.all(ctx)
	if err != nil {
		return nil, err
	}
	var out []tabs.Tab
	for _, t := range window {
		if strings.Contains(strings.ToLower(t.Title), needle) ||
			checkURL && strings.Contains(strings.ToLower(t.EffectiveURL()), needle) {
			out = append(out, t)
		}
	}
	return out, nil
}

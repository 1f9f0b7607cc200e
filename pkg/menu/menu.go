// Package menu lays out the context menu for the selection commands.
package menu

import (
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/entrhq/tabselect/pkg/commands"
)

// Item is one menu entry. Separators carry no id or title.
type Item struct {
	ID        string
	ParentID  string
	Title     string
	Contexts  []commands.Context
	Separator bool
}

// Options control how titles are rendered.
type Options struct {
	// AccessKeys marks each title's access key with '&'
	AccessKeys bool
}

// DefaultOptions enables access keys everywhere but macOS, whose menus
// would show them as "Title (K)".
func DefaultOptions() Options {
	return Options{AccessKeys: runtime.GOOS != "darwin"}
}

// Build returns the root entry followed by every command in catalog order.
// Commands shown in the tab menu get a separator at each category change;
// hidden ones lose the tab context and are dropped when none remain.
func Build(registry *commands.Registry, opts Options) []Item {
	root := registry.Root()
	items := []Item{item(root, "", root.Contexts, opts)}

	category := ""
	for _, c := range registry.All() {
		contexts := c.Contexts
		if c.ShowInTabMenu {
			if c.Category != category {
				if category != "" {
					items = append(items, Item{
						ParentID:  root.ID,
						Contexts:  []commands.Context{commands.ContextTab},
						Separator: true,
					})
				}
				category = c.Category
			}
		} else {
			contexts = without(contexts, commands.ContextTab)
			if len(contexts) == 0 {
				continue
			}
		}
		items = append(items, item(c, root.ID, contexts, opts))
	}
	return items
}

func item(c commands.Command, parent string, contexts []commands.Context, opts Options) Item {
	title := c.Title
	if opts.AccessKeys {
		title = MarkAccessKey(title, c.AccessKey)
	}
	return Item{
		ID:       c.ID,
		ParentID: parent,
		Title:    title,
		Contexts: contexts,
	}
}

func without(contexts []commands.Context, drop commands.Context) []commands.Context {
	var out []commands.Context
	for _, c := range contexts {
		if c != drop {
			out = append(out, c)
		}
	}
	return out
}

var lessPreferredWords = map[string]bool{"and": true, "the": true, "to": true, "in": true}

// MarkAccessKey puts '&' before the access key in title. The first word
// containing the key wins, skipping filler words; then any occurrence;
// otherwise the key is appended as "Title (&K)".
func MarkAccessKey(title, key string) string {
	if key == "" {
		return title
	}

	words := strings.Split(title, " ")
	for i, word := range words {
		if lessPreferredWords[strings.ToLower(word)] {
			continue
		}
		if at := indexFold(word, key); at != -1 {
			words[i] = word[:at] + "&" + word[at:]
			return strings.Join(words, " ")
		}
	}
	if at := indexFold(title, key); at != -1 {
		return title[:at] + "&" + title[at:]
	}
	return title + " (&" + strings.ToUpper(key) + ")"
}

// indexFold returns the byte offset of the first rune of s equal to the
// single-rune key under case folding, or -1.
func indexFold(s, key string) int {
	want, _ := utf8.DecodeRuneInString(key)
	want = unicode.ToLower(want)
	for i, r := range s {
		if unicode.ToLower(r) == want {
			return i
		}
	}
	return -1
}

// CleanTitle removes access key markers from a title.
func CleanTitle(title string) string {
	if open := strings.LastIndex(title, " (&"); open != -1 && strings.HasSuffix(title, ")") {
		title = title[:open]
	}
	return strings.Replace(title, "&", "", 1)
}

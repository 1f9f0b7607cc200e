package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/entrhq/tabselect/pkg/commands"
	"github.com/entrhq/tabselect/pkg/menu"
)

// RenderMenu draws the menu items in a box, with access keys underlined
// and each item's contexts on the right.
func RenderMenu(items []menu.Item) string {
	if len(items) == 0 {
		return ""
	}

	var lines []string
	for i, it := range items {
		switch {
		case i == 0:
			lines = append(lines, headerStyle.Render(menu.CleanTitle(it.Title)))
		case it.Separator:
			lines = append(lines, mutedStyle.Render(strings.Repeat("─", 24)))
		default:
			lines = append(lines, fmt.Sprintf("  %s  %s",
				renderAccessKey(it.Title),
				mutedStyle.Render(joinContexts(it.Contexts))))
		}
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// renderAccessKey replaces the '&' marker with an underlined key.
func renderAccessKey(title string) string {
	at := strings.IndexByte(title, '&')
	if at == -1 || at == len(title)-1 {
		return titleStyle.Render(title)
	}
	rest := title[at+1:]
	_, size := utf8.DecodeRuneInString(rest)
	return titleStyle.Render(title[:at]) +
		accessKeyStyle.Inherit(titleStyle).Render(rest[:size]) +
		titleStyle.Render(rest[size:])
}

func joinContexts(contexts []commands.Context) string {
	parts := make([]string, len(contexts))
	for i, c := range contexts {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

// RenderCommands lists every command by category with its preferences.
func RenderCommands(groups []commands.Group) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(headerStyle.Render(g.Category))
		b.WriteByte('\n')
		for _, c := range g.Commands {
			b.WriteString(fmt.Sprintf("  %-22s %-32s %s\n",
				c.ID, c.Title, mutedStyle.Render(prefsSummary(c))))
		}
	}
	return b.String()
}

func prefsSummary(c commands.Command) string {
	var parts []string
	if c.ShowInTabMenu {
		parts = append(parts, "tab menu")
	}
	if c.AccessKey != "" {
		parts = append(parts, "key "+c.AccessKey)
	}
	if c.Shortcut != "" {
		parts = append(parts, c.Shortcut)
	}
	return strings.Join(parts, ", ")
}

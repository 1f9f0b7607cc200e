package commands

import (
	"github.com/entrhq/tabselect/pkg/getters"
)

// RootID identifies the menu entry holding every command.
const RootID = "menuRoot"

const (
	CategoryText        = "Text search"
	CategoryURL         = "URL-based"
	CategoryTree        = "Tab tree"
	CategoryMembership  = "Membership"
	CategoryDirectional = "Directional"
	CategoryTemporal    = "Time-based"
	CategorySelection   = "Selection"
	CategorySwitch      = "Switch within selection"
)

var (
	tabOnly     = []Context{ContextTab}
	tabAndLink  = []Context{ContextTab, ContextLink}
	allContexts = []Context{ContextTab, ContextLink, ContextSelection}
)

var root = Command{
	ID:        RootID,
	Title:     "Select Tabs",
	Contexts:  allContexts,
	AccessKey: "s",
}

// catalog lists every command in menu order.
var catalog = []Command{
	{ID: "matchLinkText", Category: CategoryText, Title: "Link Text in Title or URL",
		Contexts: []Context{ContextLink}, Getter: getters.MatchLinkText, AccessKey: "t"},
	{ID: "matchSelectionText", Category: CategoryText, Title: "Selected Text in Title or URL",
		Contexts: []Context{ContextSelection}, Getter: getters.MatchSelectionText, AccessKey: "t"},

	{ID: "duplicates", Category: CategoryURL, Title: "Duplicates",
		Contexts: tabAndLink, Getter: getters.Duplicates, ShowInTabMenu: true, AccessKey: "u"},
	{ID: "sameSite", Category: CategoryURL, Title: "Same Site",
		Contexts: tabAndLink, Getter: getters.SameSite, ShowInTabMenu: true, AccessKey: "s"},
	{ID: "sameSite__cluster", Category: CategoryURL, Title: "Same Site Cluster",
		Contexts: tabOnly, Getter: getters.SameSiteCluster, ShowInTabMenu: true, AccessKey: "s"},
	{ID: "sameSite__descendants", Category: CategoryURL, Title: "Same Site and Descendants",
		Contexts: tabOnly, Getter: getters.SameSiteDescendants, ShowInTabMenu: true, AccessKey: "m"},

	{ID: "descendants", Category: CategoryTree, Title: "Descendants",
		Contexts: tabOnly, Getter: getters.Descendants, ShowInTabMenu: true, AccessKey: "d"},
	{ID: "target__descendants", Category: CategoryTree, Title: "Tab and Descendants",
		Contexts: tabOnly, Getter: getters.TargetDescendants},
	{ID: "parent", Category: CategoryTree, Title: "Parent",
		Contexts: tabOnly, Getter: getters.Parent, Policy: PinAgnostic | FocusOpener,
		ShowInTabMenu: true, AccessKey: "p"},
	{ID: "parent__descendants", Category: CategoryTree, Title: "Parent and Descendants",
		Contexts: tabOnly, Getter: getters.ParentDescendants, Policy: PinAgnostic | FocusOpener,
		ShowInTabMenu: true, AccessKey: "n"},
	{ID: "siblings", Category: CategoryTree, Title: "Siblings",
		Contexts: tabOnly, Getter: getters.Siblings},
	{ID: "siblings__descendants", Category: CategoryTree, Title: "Siblings and Descendants",
		Contexts: tabOnly, Getter: getters.SiblingsDescendants},

	{ID: "sameTabGroup", Category: CategoryMembership, Title: "Same Tab Group",
		Contexts: tabOnly, Getter: getters.SameTabGroup, ShowInTabMenu: true, AccessKey: "g"},
	{ID: "sameContainer", Category: CategoryMembership, Title: "Same Container",
		Contexts: tabOnly, Getter: getters.SameContainer, ShowInTabMenu: true, AccessKey: "c"},

	{ID: "toStart", Category: CategoryDirectional, Title: "To the Start", AltTitle: "To the Top",
		Contexts: tabOnly, Getter: getters.ToStart, ShowInTabMenu: true, AccessKey: "r"},
	{ID: "toEnd", Category: CategoryDirectional, Title: "To the End", AltTitle: "To the Bottom",
		Contexts: tabOnly, Getter: getters.ToEnd, ShowInTabMenu: true, AccessKey: "e"},
	{ID: "addLeft", Category: CategoryDirectional, Title: "Add Tab to the Left", AltTitle: "Add Tab Above",
		Contexts: tabOnly, Getter: getters.AddLeft, Policy: PinAgnostic},
	{ID: "addRight", Category: CategoryDirectional, Title: "Add Tab to the Right", AltTitle: "Add Tab Below",
		Contexts: tabOnly, Getter: getters.AddRight, Policy: PinAgnostic},
	{ID: "trailLeft", Category: CategoryDirectional, Title: "Trail to the Left", AltTitle: "Trail Upward",
		Contexts: tabOnly, Getter: getters.TrailLeft, Policy: PinAgnostic},
	{ID: "trailRight", Category: CategoryDirectional, Title: "Trail to the Right", AltTitle: "Trail Downward",
		Contexts: tabOnly, Getter: getters.TrailRight, Policy: PinAgnostic},

	{ID: "pastHour", Category: CategoryTemporal, Title: "Accessed in the Past Hour",
		Contexts: tabOnly, Getter: getters.PastHour, ShowInTabMenu: true, AccessKey: "1"},
	{ID: "past24Hours", Category: CategoryTemporal, Title: "Accessed in the Past 24 Hours",
		Contexts: tabOnly, Getter: getters.Past24Hours, ShowInTabMenu: true, AccessKey: "2"},
	{ID: "today", Category: CategoryTemporal, Title: "Accessed Today",
		Contexts: tabOnly, Getter: getters.Today, ShowInTabMenu: true, AccessKey: "o"},
	{ID: "yesterday", Category: CategoryTemporal, Title: "Accessed Yesterday",
		Contexts: tabOnly, Getter: getters.Yesterday, ShowInTabMenu: true, AccessKey: "y"},

	{ID: "all", Category: CategorySelection, Title: "All",
		Contexts: tabOnly, Getter: getters.All, ShowInTabMenu: true, AccessKey: "a"},
	{ID: "focused", Category: CategorySelection, Title: "Clear (Focused Tab Only)",
		Contexts: tabOnly, Getter: getters.Focused},
	{ID: "unselected", Category: CategorySelection, Title: "Invert",
		Contexts: tabOnly, Getter: getters.Unselected, Policy: InvertSelection,
		ShowInTabMenu: true, AccessKey: "v"},
	{ID: "cluster", Category: CategorySelection, Title: "Cluster",
		Contexts: tabOnly, Getter: getters.SelectionCluster, ShowInTabMenu: true, AccessKey: "l"},

	{ID: "switchToHere", Category: CategorySwitch, Title: "Switch to Here",
		Contexts: tabOnly, Getter: getters.SwitchToHere, Policy: PinAgnostic,
		ShowInTabMenu: true, AccessKey: "h"},
	{ID: "cycleForward", Category: CategorySwitch, Title: "Cycle Forward", AltTitle: "Cycle Down",
		Contexts: tabOnly, Getter: getters.CycleForward, Policy: PinAgnostic},
	{ID: "cycleBackward", Category: CategorySwitch, Title: "Cycle Backward", AltTitle: "Cycle Up",
		Contexts: tabOnly, Getter: getters.CycleBackward, Policy: PinAgnostic},
}

// Catalog returns the default commands in menu order, excluding the root.
func Catalog() []Command {
	out := make([]Command, len(catalog))
	for i, c := range catalog {
		out[i] = c.clone()
	}
	return out
}

// Root returns the default root menu entry.
func Root() Command {
	return root.clone()
}

package getters

import (
	"context"

	"github.com/entrhq/tabselect/pkg/tabs"
)

// defaultContainers are the cookie stores that do not partition tabs.
var defaultContainers = map[string]bool{
	"":                true,
	"firefox-default": true,
	"firefox-private": true,
}

// SameTabGroup selects the tabs in the target's tab group.
func SameTabGroup(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	if !q.Target.HasGroup() {
		return nil, nil
	}
	return q.Host.QueryTabs(ctx, tabs.Filter{GroupID: tabs.Int(q.Target.GroupID)})
}

// SameContainer selects the tabs in the target's container.
func SameContainer(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	if defaultContainers[q.Target.CookieStoreID] {
		return nil, nil
	}
	return q.Host.QueryTabs(ctx, tabs.Filter{CookieStoreID: tabs.String(q.Target.CookieStoreID)})
}

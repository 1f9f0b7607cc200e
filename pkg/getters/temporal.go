package getters

import (
	"context"
	"time"

	"github.com/entrhq/tabselect/pkg/tabs"
)

// PastHour selects tabs accessed within the last hour.
func PastHour(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	return accessedWithin(ctx, q, time.Hour)
}

// Past24Hours selects tabs accessed within the last 24 hours.
func Past24Hours(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	return accessedWithin(ctx, q, 24*time.Hour)
}

// Today selects tabs last accessed on the current local calendar day.
func Today(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	return accessedOnDay(ctx, q, 0)
}

// Yesterday selects tabs last accessed on the previous local calendar day.
func Yesterday(ctx context.Context, q *Query) ([]tabs.Tab, error) {
	return accessedOnDay(ctx, q, -1)
}

func accessedWithin(ctx context.Context, q *Query, period time.Duration) ([]tabs.Tab, error) {
	window, err := q.all(ctx)
	if err != nil {
		return nil, err
	}
	now := q.now()
	var out []tabs.Tab
	for _, t := range window {
		if now.Sub(t.LastAccessed) <= period {
			out = append(out, t)
		}
	}
	return out, nil
}

func accessedOnDay(ctx context.Context, q *Query, offset int) ([]tabs.Tab, error) {
	window, err := q.all(ctx)
	if err != nil {
		return nil, err
	}
	now := q.now()
	loc := now.Location()
	year, month, day := now.AddDate(0, 0, offset).Date()

	var out []tabs.Tab
	for _, t := range window {
		if t.LastAccessed.IsZero() {
			continue
		}
		y, m, d := t.LastAccessed.In(loc).Date()
		if y == year && m == month && d == day {
			out = append(out, t)
		}
	}
	return out, nil
}

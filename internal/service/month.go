// Package service holds the business logic that the page handlers
// drive: recurring-rule materialization, budget carry-forward and the
// aggregation queries behind the dashboard, history and reports pages.
package service

import (
	"fmt"
	"time"
)

// monthRange converts a "YYYY-MM" key into the [start, end) interval
// covering that calendar month, in local time. Timestamps are stored in
// local time, so range comparisons stay consistent.
func monthRange(month string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month key %q: %w", month, err)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 1, 0), nil
}

// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"
)

const (
	layoutISOTime  = "2006-1-2 15:04"
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// ParseDay parses a user-supplied date, with or without a time of day.
func ParseDay(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation(layoutISOTime, s, time.Local); err == nil {
		return &t, nil
	}
	if t, err := time.ParseInLocation(layoutISO, s, time.Local); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation(layoutISOShort, s, time.Local)
	if err != nil {
		return nil, err
	}
	// Let the year be the same.
	t = t.AddDate(time.Now().Year(), 0, 0)
	// I am gonna assume if you said 1/3 on 12/5, you meant next year, not 11 months ago.
	if t.Before(time.Now()) {
		t = t.AddDate(1, 0, 0)
	}
	return &t, nil
}

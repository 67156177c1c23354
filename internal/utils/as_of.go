package utils

import (
	"fmt"
	"strings"
	"time"
)

const asOfDateLayout = "2006-01-02"

// ParseAsOf reads an evaluation time. RFC3339 timestamps are used as given and shown in loc;
// a bare YYYY-MM-DD date means the last instant of that day in loc.
func ParseAsOf(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc), nil
	}
	day, err := time.ParseInLocation(asOfDateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("asOf must be RFC3339 or YYYY-MM-DD, got %q", raw)
	}
	return day.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

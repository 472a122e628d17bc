package format

import (
	"strconv"
	"strings"
	"time"
)

// HourBucket renders the clock hour a game starts in, 12-hour style without
// minutes, in the given location (e.g. "6 PM").
func HourBucket(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("3 PM")
}

// ExactTime renders the precise start time in the given location
// (e.g. "6:35 PM").
func ExactTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("3:04 PM")
}

// bucketHour converts an hour-bucket label back to its 24-hour value so
// buckets sort numerically: "12 AM" → 0, "12 PM" → 12, "6 PM" → 18.
// Unparseable labels sort last.
func bucketHour(label string) int {
	parts := strings.SplitN(label, " ", 2)
	if len(parts) != 2 {
		return 24
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 24
	}
	switch parts[1] {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}
	return hour
}

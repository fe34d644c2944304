package utils

import "time"

// MondayOfWeek returns the local midnight of the Monday belonging to t's
// calendar week in loc.
func MondayOfWeek(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	// time.Weekday counts Sunday as 0.
	offset := int(midnight.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return midnight.AddDate(0, 0, -offset)
}

package models

import (
	"time"

	"shiftcal-service/internal/pkg/constvars"
)

// DayWindow identifies one local calendar day: its local midnight and the
// zone it belongs to. The UTC instant bounds are derived, never stored, so
// DST transitions (23h / 25h days) stay correct.
type DayWindow struct {
	Midnight time.Time
	Loc      *time.Location
}

// NewDayWindow truncates t to its local midnight in loc.
func NewDayWindow(t time.Time, loc *time.Location) DayWindow {
	local := t.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return DayWindow{Midnight: midnight, Loc: loc}
}

// StartUTC is the first instant of the day.
func (d DayWindow) StartUTC() time.Time {
	return d.Midnight.UTC()
}

// EndUTC is the first instant of the next day; the day range is the
// half-open interval [StartUTC, EndUTC).
func (d DayWindow) EndUTC() time.Time {
	return d.AddDays(1).Midnight.UTC()
}

// AddDays moves n calendar days while staying on local midnight.
func (d DayWindow) AddDays(n int) DayWindow {
	next := d.Midnight.AddDate(0, 0, n)
	return NewDayWindow(next, d.Loc)
}

// ISODate renders the day as YYYY-MM-DD, the form used in cache keys.
func (d DayWindow) ISODate() string {
	return d.Midnight.Format(constvars.ISODateLayout)
}

// Contains reports whether instant t falls inside the day's half-open range.
func (d DayWindow) Contains(t time.Time) bool {
	return !t.Before(d.StartUTC()) && t.Before(d.EndUTC())
}

// LocalHour converts an instant to fractional hours within this day's zone,
// e.g. 09:30 -> 9.5. The caller is responsible for t actually belonging to
// this day.
func (d DayWindow) LocalHour(t time.Time) float64 {
	local := t.In(d.Loc)
	return float64(local.Hour()) +
		float64(local.Minute())/60 +
		float64(local.Second())/3600
}

// WeekOf builds the 7 consecutive days starting at weekStart.
func WeekOf(weekStart DayWindow) [constvars.DaysPerWeek]DayWindow {
	var week [constvars.DaysPerWeek]DayWindow
	for i := range week {
		week[i] = weekStart.AddDays(i)
	}
	return week
}

package models

import "time"

// RawShift is a shift record as returned by the external source. It is
// immutable once fetched; JSON tags exist so cached padded-window results
// survive a serialization round trip unchanged.
type RawShift struct {
	ID        string    `json:"id"`
	SubjectID string    `json:"subject_id"`
	TeamID    string    `json:"team_id"`
	TeamName  string    `json:"team_name,omitempty"`
	GroupName string    `json:"group_name,omitempty"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Theme     string    `json:"theme,omitempty"`
	Label     string    `json:"label,omitempty"`
}

// DisplayName prefers the scheduling-group name over the team name, the
// same precedence the calendar grid shows inside a shift block.
func (s RawShift) DisplayName() string {
	if s.GroupName != "" {
		return s.GroupName
	}
	if s.TeamName != "" {
		return s.TeamName
	}
	return s.TeamID
}

// Overlaps reports whether the shift's [Start,End) range intersects the
// half-open instant range [from,to).
func (s RawShift) Overlaps(from, to time.Time) bool {
	return s.Start.Before(to) && s.End.After(from)
}

// ShiftFragment is a piece of exactly one RawShift bounded to a single
// calendar day. StartHour and EndHour are fractional hours local to that
// day, in [0,24]; a fragment never crosses a day boundary.
type ShiftFragment struct {
	FragmentID string     `json:"fragment_id"`
	ShiftID    string     `json:"shift_id"`
	DayIndex   int        `json:"day_index"`
	StartHour  float64    `json:"start_hour"`
	EndHour    float64    `json:"end_hour"`
	TeamName   string     `json:"team_name"`
	Theme      ShiftTheme `json:"theme"`
	Label      string     `json:"label,omitempty"`
}

// TrackAssignment places a fragment in a horizontal rendering slot.
// TrackCount is the number of tracks in use at the moment the fragment was
// placed, not the day's eventual maximum; consumers wanting the day maximum
// take the max across the day's assignments.
type TrackAssignment struct {
	TrackIndex int `json:"track_index"`
	TrackCount int `json:"track_count"`
}

// LaidOutFragment is what the presentation layer consumes: a day-bounded
// fragment together with its track assignment.
type LaidOutFragment struct {
	ShiftFragment
	TrackAssignment
}

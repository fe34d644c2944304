package responses

import "shiftcal-service/internal/app/models"

// WeekRoster is the payload handed to the presentation layer: normalized,
// track-assigned fragments that never need timestamp re-parsing.
type WeekRoster struct {
	WeekStart string      `json:"week_start"`
	Timezone  string      `json:"timezone"`
	SubjectID string      `json:"subject_id,omitempty"`
	Days      []DayRoster `json:"days"`
}

// DayRoster distinguishes "no data because empty" (Failed=false, no
// fragments) from "no data because the fetch failed" (Failed=true).
type DayRoster struct {
	Date      string                   `json:"date"`
	DayIndex  int                      `json:"day_index"`
	Failed    bool                     `json:"failed"`
	Fragments []models.LaidOutFragment `json:"fragments"`
}

package roster

import (
	"time"

	"shiftcal-service/internal/app/models"
	"shiftcal-service/internal/pkg/constvars"
)

const (
	fragmentSuffixFirst  = "-part1"
	fragmentSuffixSecond = "-part2"

	endOfDayHour = 24.0
)

// dayIndexOf locates the week day containing instant t: 0..6 inside the
// week, -1 before it, 7 after it.
func dayIndexOf(t time.Time, week [constvars.DaysPerWeek]models.DayWindow) int {
	if t.Before(week[0].StartUTC()) {
		return -1
	}
	for i := range week {
		if week[i].Contains(t) {
			return i
		}
	}
	return constvars.DaysPerWeek
}

// NormalizeShift splits one raw shift into day-bounded fragments: one when
// the shift stays inside a single day, two when it crosses local midnight
// (first half up to 24.0, second half from 0.0). A tail ending exactly at
// midnight produces no second fragment, and zero or negative duration
// yields nothing at all. Endpoints outside the week contribute no fragment.
func NormalizeShift(shift models.RawShift, week [constvars.DaysPerWeek]models.DayWindow) []models.ShiftFragment {
	if !shift.End.After(shift.Start) {
		return nil
	}

	startIdx := dayIndexOf(shift.Start, week)
	endIdx := dayIndexOf(shift.End, week)

	teamName := shift.DisplayName()
	theme := models.ParseShiftTheme(shift.Theme)

	if startIdx == endIdx {
		if startIdx < 0 || startIdx >= constvars.DaysPerWeek {
			return nil
		}
		day := week[startIdx]
		startHour := day.LocalHour(shift.Start)
		endHour := day.LocalHour(shift.End)
		if endHour <= startHour {
			return nil
		}
		return []models.ShiftFragment{{
			FragmentID: shift.ID + fragmentSuffixFirst,
			ShiftID:    shift.ID,
			DayIndex:   startIdx,
			StartHour:  startHour,
			EndHour:    endHour,
			TeamName:   teamName,
			Theme:      theme,
			Label:      shift.Label,
		}}
	}

	fragments := make([]models.ShiftFragment, 0, 2)
	if startIdx >= 0 && startIdx < constvars.DaysPerWeek {
		day := week[startIdx]
		startHour := day.LocalHour(shift.Start)
		if startHour < endOfDayHour {
			fragments = append(fragments, models.ShiftFragment{
				FragmentID: shift.ID + fragmentSuffixFirst,
				ShiftID:    shift.ID,
				DayIndex:   startIdx,
				StartHour:  startHour,
				EndHour:    endOfDayHour,
				TeamName:   teamName,
				Theme:      theme,
				Label:      shift.Label,
			})
		}
	}
	if endIdx >= 0 && endIdx < constvars.DaysPerWeek {
		day := week[endIdx]
		endHour := day.LocalHour(shift.End)
		if endHour > 0 {
			fragments = append(fragments, models.ShiftFragment{
				FragmentID: shift.ID + fragmentSuffixSecond,
				ShiftID:    shift.ID,
				DayIndex:   endIdx,
				StartHour:  0,
				EndHour:    endHour,
				TeamName:   teamName,
				Theme:      theme,
				Label:      shift.Label,
			})
		}
	}
	return fragments
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindow(t *testing.T) {
	t.Run("truncates to local midnight", func(t *testing.T) {
		day := NewDayWindow(time.Date(2026, 1, 6, 15, 42, 7, 0, time.UTC), time.UTC)
		assert.Equal(t, "2026-01-06", day.ISODate())
		assert.Equal(t, time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), day.StartUTC())
		assert.Equal(t, time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC), day.EndUTC())
	})

	t.Run("contains is half open", func(t *testing.T) {
		day := NewDayWindow(time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), time.UTC)
		assert.True(t, day.Contains(day.StartUTC()))
		assert.True(t, day.Contains(time.Date(2026, 1, 6, 23, 59, 59, 0, time.UTC)))
		assert.False(t, day.Contains(day.EndUTC()))
	})

	t.Run("local hour is fractional", func(t *testing.T) {
		day := NewDayWindow(time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), time.UTC)
		assert.InDelta(t, 9.5, day.LocalHour(time.Date(2026, 1, 6, 9, 30, 0, 0, time.UTC)), 1e-9)
		assert.InDelta(t, 17.25, day.LocalHour(time.Date(2026, 1, 6, 17, 15, 0, 0, time.UTC)), 1e-9)
	})

	t.Run("spring forward keeps day boundaries on local midnight", func(t *testing.T) {
		loc, err := time.LoadLocation("Europe/Copenhagen")
		require.NoError(t, err)

		// 2026-03-29 is a 23 hour day in Copenhagen.
		day := NewDayWindow(time.Date(2026, 3, 29, 12, 0, 0, 0, loc), loc)
		assert.Equal(t, "2026-03-29", day.ISODate())
		assert.Equal(t, 23*time.Hour, day.EndUTC().Sub(day.StartUTC()))
		assert.Equal(t, "2026-03-30", day.AddDays(1).ISODate())
	})

	t.Run("week spans seven consecutive days", func(t *testing.T) {
		start := NewDayWindow(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), time.UTC)
		week := WeekOf(start)

		assert.Equal(t, "2026-01-05", week[0].ISODate())
		assert.Equal(t, "2026-01-11", week[6].ISODate())
		for i := 1; i < len(week); i++ {
			assert.Equal(t, week[i-1].EndUTC(), week[i].StartUTC())
		}
	})
}

func TestRawShiftOverlaps(t *testing.T) {
	shift := RawShift{
		Start: time.Date(2026, 1, 6, 22, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 7, 6, 0, 0, 0, time.UTC),
	}

	day6Start := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	day7Start := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)
	day8Start := time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)

	assert.True(t, shift.Overlaps(day6Start, day7Start))
	assert.True(t, shift.Overlaps(day7Start, day8Start))
	assert.False(t, shift.Overlaps(day8Start, day8Start.Add(24*time.Hour)))

	endsAtMidnight := RawShift{
		Start: time.Date(2026, 1, 6, 16, 0, 0, 0, time.UTC),
		End:   day7Start,
	}
	assert.False(t, endsAtMidnight.Overlaps(day7Start, day8Start), "half-open end excludes the boundary")
}

func TestRawShiftDisplayName(t *testing.T) {
	assert.Equal(t, "Night Crew", RawShift{GroupName: "Night Crew", TeamName: "Emergency", TeamID: "t1"}.DisplayName())
	assert.Equal(t, "Emergency", RawShift{TeamName: "Emergency", TeamID: "t1"}.DisplayName())
	assert.Equal(t, "t1", RawShift{TeamID: "t1"}.DisplayName())
}

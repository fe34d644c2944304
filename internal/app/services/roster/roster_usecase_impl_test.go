package roster

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"shiftcal-service/internal/app/contracts"
	"shiftcal-service/internal/app/models"
	"shiftcal-service/internal/app/services/shared/cache"
	"shiftcal-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type queryWindow struct {
	start     time.Time
	end       time.Time
	subjectID string
}

// fakeShiftSource returns the configured shifts overlapping each queried
// window and records every call. failDates marks the days (by the middle
// day of the padded window) whose queries error.
type fakeShiftSource struct {
	mu        sync.Mutex
	shifts    []models.RawShift
	failDates map[string]bool
	windows   []queryWindow
}

func (f *fakeShiftSource) QueryShifts(ctx context.Context, startUTC, endUTC time.Time, subjectID string) ([]models.RawShift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.windows = append(f.windows, queryWindow{start: startUTC, end: endUTC, subjectID: subjectID})

	middleDay := startUTC.Add(24 * time.Hour).Format(constvars.ISODateLayout)
	if f.failDates[middleDay] {
		return nil, errors.New("source down")
	}

	var result []models.RawShift
	for _, shift := range f.shifts {
		if shift.Overlaps(startUTC, endUTC) {
			result = append(result, shift)
		}
	}
	return result, nil
}

func (f *fakeShiftSource) queryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.windows)
}

type staticResolver struct {
	mapping map[string]string
}

func (r *staticResolver) Resolve(ctx context.Context, input string) (string, error) {
	if resolved, ok := r.mapping[input]; ok {
		return resolved, nil
	}
	return input, nil
}

func newTestUsecase(source *fakeShiftSource, resolver contracts.SubjectResolver) contracts.RosterUsecase {
	if resolver == nil {
		resolver = &staticResolver{}
	}
	return NewRosterUsecase(source, cache.NewMemoryCacheStore(), resolver, zap.NewNop(), constvars.ShiftCacheTTLMinutes)
}

func TestFetchDayShifts(t *testing.T) {
	ctx := context.Background()
	day := models.NewDayWindow(time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), time.UTC)

	t.Run("queries a padded three-day window", func(t *testing.T) {
		source := &fakeShiftSource{}
		usecase := newTestUsecase(source, nil)

		_, err := usecase.FetchDayShifts(ctx, day, "u1")
		require.NoError(t, err)

		require.Len(t, source.windows, 1)
		assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), source.windows[0].start)
		assert.Equal(t, time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC), source.windows[0].end)
		assert.Equal(t, "u1", source.windows[0].subjectID)
	})

	t.Run("second fetch within the TTL is served from cache", func(t *testing.T) {
		source := &fakeShiftSource{}
		usecase := newTestUsecase(source, nil)

		_, err := usecase.FetchDayShifts(ctx, day, "u1")
		require.NoError(t, err)
		_, err = usecase.FetchDayShifts(ctx, day, "u1")
		require.NoError(t, err)

		assert.Equal(t, 1, source.queryCount())
	})

	t.Run("cache keys separate subjects", func(t *testing.T) {
		source := &fakeShiftSource{}
		usecase := newTestUsecase(source, nil)

		_, err := usecase.FetchDayShifts(ctx, day, "u1")
		require.NoError(t, err)
		_, err = usecase.FetchDayShifts(ctx, day, "u2")
		require.NoError(t, err)

		assert.Equal(t, 2, source.queryCount())
	})

	t.Run("padded results are filtered to the exact day", func(t *testing.T) {
		source := &fakeShiftSource{shifts: []models.RawShift{
			{
				ID:    "prev-day",
				Start: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 1, 5, 17, 0, 0, 0, time.UTC),
			},
			{
				ID:    "crosses-in",
				Start: time.Date(2026, 1, 5, 22, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 1, 6, 6, 0, 0, 0, time.UTC),
			},
			{
				ID:    "inside",
				Start: time.Date(2026, 1, 6, 9, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 1, 6, 17, 0, 0, 0, time.UTC),
			},
			{
				ID:    "ends-at-midnight",
				Start: time.Date(2026, 1, 5, 16, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
			},
		}}
		usecase := newTestUsecase(source, nil)

		shifts, err := usecase.FetchDayShifts(ctx, day, "u1")
		require.NoError(t, err)

		ids := make([]string, 0, len(shifts))
		for _, shift := range shifts {
			ids = append(ids, shift.ID)
		}
		assert.ElementsMatch(t, []string{"crosses-in", "inside"}, ids,
			"half-open overlap keeps midnight crossers and drops exact-midnight enders")
	})
}

func TestFetchWeekShifts(t *testing.T) {
	ctx := context.Background()
	weekStart := models.NewDayWindow(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), time.UTC)

	t.Run("assembles seven days in order", func(t *testing.T) {
		source := &fakeShiftSource{}
		usecase := newTestUsecase(source, nil)

		week, err := usecase.FetchWeekShifts(ctx, contracts.WeekRosterInput{WeekStart: weekStart})
		require.NoError(t, err)

		for i, day := range week {
			assert.Equal(t, weekStart.AddDays(i).ISODate(), day.Day.ISODate())
			assert.False(t, day.Failed)
		}
		assert.Equal(t, constvars.DaysPerWeek, source.queryCount())
	})

	t.Run("a failed day is marked and does not sink the week", func(t *testing.T) {
		source := &fakeShiftSource{
			shifts: []models.RawShift{{
				ID:    "ok-shift",
				Start: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 1, 5, 17, 0, 0, 0, time.UTC),
			}},
			failDates: map[string]bool{"2026-01-08": true},
		}
		usecase := newTestUsecase(source, nil)

		week, err := usecase.FetchWeekShifts(ctx, contracts.WeekRosterInput{WeekStart: weekStart})
		require.NoError(t, err)

		assert.False(t, week[0].Failed)
		assert.Len(t, week[0].Shifts, 1)
		assert.True(t, week[3].Failed)
		assert.Empty(t, week[3].Shifts)
	})

	t.Run("resolves the subject before querying", func(t *testing.T) {
		source := &fakeShiftSource{}
		resolver := &staticResolver{mapping: map[string]string{
			"user@example.org": "5f1c2b3a-0000-0000-0000-000000000001",
		}}
		usecase := newTestUsecase(source, resolver)

		_, err := usecase.FetchWeekShifts(ctx, contracts.WeekRosterInput{
			WeekStart: weekStart,
			SubjectID: "user@example.org",
		})
		require.NoError(t, err)

		for _, window := range source.windows {
			assert.Equal(t, "5f1c2b3a-0000-0000-0000-000000000001", window.subjectID)
		}
	})
}

func TestBuildWeekRoster(t *testing.T) {
	ctx := context.Background()
	weekStart := models.NewDayWindow(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), time.UTC)

	t.Run("midnight crosser appears once per day despite double fetch", func(t *testing.T) {
		source := &fakeShiftSource{shifts: []models.RawShift{{
			ID:    "night",
			Start: time.Date(2026, 1, 6, 22, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 1, 7, 6, 0, 0, 0, time.UTC),
		}}}
		usecase := newTestUsecase(source, nil)

		layouts, err := usecase.BuildWeekRoster(ctx, contracts.WeekRosterInput{WeekStart: weekStart})
		require.NoError(t, err)

		require.Len(t, layouts[1].Fragments, 1)
		require.Len(t, layouts[2].Fragments, 1)
		assert.Equal(t, "night-part1", layouts[1].Fragments[0].FragmentID)
		assert.Equal(t, 22.0, layouts[1].Fragments[0].StartHour)
		assert.Equal(t, 24.0, layouts[1].Fragments[0].EndHour)
		assert.Equal(t, "night-part2", layouts[2].Fragments[0].FragmentID)
		assert.Equal(t, 0.0, layouts[2].Fragments[0].StartHour)
		assert.Equal(t, 6.0, layouts[2].Fragments[0].EndHour)
	})

	t.Run("overlapping shifts receive distinct tracks", func(t *testing.T) {
		source := &fakeShiftSource{shifts: []models.RawShift{
			{
				ID:    "early",
				Start: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC),
			},
			{
				ID:    "mid",
				Start: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 1, 5, 11, 30, 0, 0, time.UTC),
			},
			{
				ID:    "late",
				Start: time.Date(2026, 1, 5, 12, 30, 0, 0, time.UTC),
				End:   time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC),
			},
		}}
		usecase := newTestUsecase(source, nil)

		layouts, err := usecase.BuildWeekRoster(ctx, contracts.WeekRosterInput{WeekStart: weekStart})
		require.NoError(t, err)

		fragments := layouts[0].Fragments
		require.Len(t, fragments, 3)

		byShift := make(map[string]models.LaidOutFragment, len(fragments))
		for _, f := range fragments {
			byShift[f.ShiftID] = f
		}
		assert.Equal(t, 0, byShift["early"].TrackIndex)
		assert.Equal(t, 1, byShift["early"].TrackCount)
		assert.Equal(t, 1, byShift["mid"].TrackIndex)
		assert.Equal(t, 2, byShift["mid"].TrackCount)
		assert.Equal(t, 0, byShift["late"].TrackIndex)
		assert.Equal(t, 2, byShift["late"].TrackCount)
	})

	t.Run("fragments come out ordered by start hour", func(t *testing.T) {
		source := &fakeShiftSource{shifts: []models.RawShift{
			{
				ID:    "b",
				Start: time.Date(2026, 1, 5, 14, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 1, 5, 16, 0, 0, 0, time.UTC),
			},
			{
				ID:    "a",
				Start: time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
			},
		}}
		usecase := newTestUsecase(source, nil)

		layouts, err := usecase.BuildWeekRoster(ctx, contracts.WeekRosterInput{WeekStart: weekStart})
		require.NoError(t, err)

		fragments := layouts[0].Fragments
		require.Len(t, fragments, 2)
		assert.Equal(t, "a", fragments[0].ShiftID)
		assert.Equal(t, "b", fragments[1].ShiftID)
	})
}

func TestRefreshWeekRoster(t *testing.T) {
	ctx := context.Background()
	weekStart := models.NewDayWindow(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), time.UTC)

	source := &fakeShiftSource{}
	usecase := newTestUsecase(source, nil)

	_, err := usecase.BuildWeekRoster(ctx, contracts.WeekRosterInput{WeekStart: weekStart})
	require.NoError(t, err)
	assert.Equal(t, constvars.DaysPerWeek, source.queryCount())

	// A plain rebuild inside the TTL hits the cache only.
	_, err = usecase.BuildWeekRoster(ctx, contracts.WeekRosterInput{WeekStart: weekStart})
	require.NoError(t, err)
	assert.Equal(t, constvars.DaysPerWeek, source.queryCount())

	// Refresh drops all seven entries and queries the source again.
	_, err = usecase.RefreshWeekRoster(ctx, contracts.WeekRosterInput{WeekStart: weekStart})
	require.NoError(t, err)
	assert.Equal(t, 2*constvars.DaysPerWeek, source.queryCount())
}

func TestCacheKeyFor(t *testing.T) {
	day := models.NewDayWindow(time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, "shifts:2026-01-06:u1", CacheKeyFor(day, "u1"))
	assert.Equal(t, "shifts:2026-01-06:", CacheKeyFor(day, ""))
}

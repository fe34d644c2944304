package roster

import (
	"context"
	"sync"
	"time"

	"shiftcal-service/internal/app/contracts"
	"shiftcal-service/internal/app/models"
	"shiftcal-service/internal/pkg/constvars"
	"shiftcal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type rosterUsecase struct {
	source   contracts.ShiftSourceClient
	cache    contracts.CacheStore
	resolver contracts.SubjectResolver
	log      *zap.Logger
	ttl      time.Duration
	now      func() time.Time
}

// NewRosterUsecase wires the roster pipeline. ttlMinutes <= 0 falls back
// to the default cache TTL.
func NewRosterUsecase(
	source contracts.ShiftSourceClient,
	cache contracts.CacheStore,
	resolver contracts.SubjectResolver,
	logger *zap.Logger,
	ttlMinutes int,
) contracts.RosterUsecase {
	if ttlMinutes <= 0 {
		ttlMinutes = constvars.ShiftCacheTTLMinutes
	}
	return &rosterUsecase{
		source:   source,
		cache:    cache,
		resolver: resolver,
		log:      logger,
		ttl:      time.Duration(ttlMinutes) * time.Minute,
		now:      time.Now,
	}
}

// CacheKeyFor is the cache key of one day's padded-window fetch. The
// format is a public contract; refresh invalidates exactly these keys.
func CacheKeyFor(day models.DayWindow, subjectID string) string {
	return constvars.ShiftCacheKeyPrefix + day.ISODate() + ":" + subjectID
}

// FetchDayShifts loads the shifts overlapping one local day. The source
// query covers a three-day padded window around the day so that shifts
// spilling over midnight are captured; the padded result is what gets
// cached, and the exact-day overlap filter is applied on every read,
// cached or fresh.
func (u *rosterUsecase) FetchDayShifts(ctx context.Context, day models.DayWindow, subjectID string) ([]models.RawShift, error) {
	key := CacheKeyFor(day, subjectID)

	payload, err := u.cache.GetOrCompute(ctx, key, u.now().Add(u.ttl), func(ctx context.Context) ([]byte, error) {
		paddedStart := day.AddDays(-1).StartUTC()
		paddedEnd := day.AddDays(1).EndUTC()

		shifts, err := u.source.QueryShifts(ctx, paddedStart, paddedEnd, subjectID)
		if err != nil {
			return nil, err
		}

		raw, err := json.Marshal(shifts)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		return raw, nil
	})
	if err != nil {
		return nil, err
	}

	var padded []models.RawShift
	if err := json.Unmarshal(payload, &padded); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	dayStart := day.StartUTC()
	dayEnd := day.EndUTC()
	shifts := make([]models.RawShift, 0, len(padded))
	for _, shift := range padded {
		if shift.Overlaps(dayStart, dayEnd) {
			shifts = append(shifts, shift)
		}
	}
	return shifts, nil
}

// FetchWeekShifts loads 7 consecutive days concurrently. A failed day is
// marked Failed and left empty rather than sinking the week; results are
// assembled by day index, never by completion order.
func (u *rosterUsecase) FetchWeekShifts(ctx context.Context, input contracts.WeekRosterInput) ([constvars.DaysPerWeek]contracts.DayShifts, error) {
	var week [constvars.DaysPerWeek]contracts.DayShifts

	subjectID, err := u.resolver.Resolve(ctx, input.SubjectID)
	if err != nil {
		return week, err
	}

	days := models.WeekOf(input.WeekStart)

	var wg sync.WaitGroup
	for i := range days {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			shifts, err := u.FetchDayShifts(ctx, days[i], subjectID)
			if err != nil {
				u.log.Error("day fetch failed, serving week without it",
					zap.String(constvars.LoggingDayKey, days[i].ISODate()),
					zap.String(constvars.LoggingSubjectIDKey, subjectID),
					zap.Error(err),
				)
				week[i] = contracts.DayShifts{Day: days[i], Failed: true}
				return
			}
			week[i] = contracts.DayShifts{Day: days[i], Shifts: shifts}
		}(i)
	}
	wg.Wait()

	return week, nil
}

// BuildWeekRoster runs the full pipeline for one week: fetch every day,
// deduplicate shifts across days (a midnight-crossing shift is returned by
// both adjacent day fetches), normalize each unique shift into day-bounded
// fragments, then lay out each day's fragments on tracks.
func (u *rosterUsecase) BuildWeekRoster(ctx context.Context, input contracts.WeekRosterInput) ([constvars.DaysPerWeek]contracts.DayLayout, error) {
	var layouts [constvars.DaysPerWeek]contracts.DayLayout

	week, err := u.FetchWeekShifts(ctx, input)
	if err != nil {
		return layouts, err
	}
	days := models.WeekOf(input.WeekStart)

	seen := make(map[string]bool)
	var uniques []models.RawShift
	for _, day := range week {
		for _, shift := range day.Shifts {
			if seen[shift.ID] {
				continue
			}
			seen[shift.ID] = true
			uniques = append(uniques, shift)
		}
	}

	var fragmentsByDay [constvars.DaysPerWeek][]models.ShiftFragment
	for _, shift := range uniques {
		for _, fragment := range NormalizeShift(shift, days) {
			fragmentsByDay[fragment.DayIndex] = append(fragmentsByDay[fragment.DayIndex], fragment)
		}
	}

	for i := range layouts {
		sorted := SortFragmentsByStart(fragmentsByDay[i])
		assignments := LayoutDay(sorted)

		laidOut := make([]models.LaidOutFragment, 0, len(sorted))
		for _, fragment := range sorted {
			assignment, ok := assignments[fragment.FragmentID]
			if !ok {
				continue
			}
			laidOut = append(laidOut, models.LaidOutFragment{
				ShiftFragment:   fragment,
				TrackAssignment: assignment,
			})
		}
		layouts[i] = contracts.DayLayout{
			Day:       days[i],
			Failed:    week[i].Failed,
			Fragments: laidOut,
		}
	}
	return layouts, nil
}

// RefreshWeekRoster drops the week's cache entries and rebuilds from the
// source. The subject is resolved once so that invalidation and the
// rebuild target the same keys.
func (u *rosterUsecase) RefreshWeekRoster(ctx context.Context, input contracts.WeekRosterInput) ([constvars.DaysPerWeek]contracts.DayLayout, error) {
	var layouts [constvars.DaysPerWeek]contracts.DayLayout

	subjectID, err := u.resolver.Resolve(ctx, input.SubjectID)
	if err != nil {
		return layouts, err
	}

	days := models.WeekOf(input.WeekStart)
	for i := range days {
		key := CacheKeyFor(days[i], subjectID)
		if err := u.cache.Invalidate(ctx, key); err != nil {
			u.log.Warn("cache invalidation failed, entry will age out",
				zap.String(constvars.LoggingCacheKey, key),
				zap.Error(err),
			)
		}
	}

	return u.BuildWeekRoster(ctx, contracts.WeekRosterInput{
		WeekStart: input.WeekStart,
		SubjectID: subjectID,
	})
}

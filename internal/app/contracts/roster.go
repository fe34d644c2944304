package contracts

import (
	"context"

	"shiftcal-service/internal/app/models"
	"shiftcal-service/internal/pkg/constvars"
)

// DayShifts is one day's fetch outcome. Failed marks a day whose source
// query errored; its Shifts are empty but the week as a whole still loads
// (skip-day policy, applied consistently everywhere).
type DayShifts struct {
	Day    models.DayWindow
	Shifts []models.RawShift
	Failed bool
}

// DayLayout is one day's render-ready outcome.
type DayLayout struct {
	Day       models.DayWindow
	Failed    bool
	Fragments []models.LaidOutFragment
}

// WeekRosterInput identifies a week load. SubjectID may be a canonical
// identifier, a principal name (resolved internally) or empty for the
// caller's own identity.
type WeekRosterInput struct {
	WeekStart models.DayWindow
	SubjectID string
}

// RosterUsecase is the surface the delivery layer consumes.
type RosterUsecase interface {
	// FetchDayShifts returns the raw shifts overlapping one local day,
	// serving from cache within the TTL window.
	FetchDayShifts(ctx context.Context, day models.DayWindow, subjectID string) ([]models.RawShift, error)

	// FetchWeekShifts fetches 7 consecutive days, assembled in day-index
	// order regardless of fetch order.
	FetchWeekShifts(ctx context.Context, input WeekRosterInput) ([constvars.DaysPerWeek]DayShifts, error)

	// BuildWeekRoster runs the full pipeline: fetch, normalize into
	// day-bounded fragments, assign tracks.
	BuildWeekRoster(ctx context.Context, input WeekRosterInput) ([constvars.DaysPerWeek]DayLayout, error)

	// RefreshWeekRoster invalidates the week's cache entries before
	// rebuilding, forcing fresh source queries.
	RefreshWeekRoster(ctx context.Context, input WeekRosterInput) ([constvars.DaysPerWeek]DayLayout, error)
}

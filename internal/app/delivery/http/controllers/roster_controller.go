package controllers

import (
	"net/http"
	"time"

	"shiftcal-service/internal/app/config"
	"shiftcal-service/internal/app/contracts"
	"shiftcal-service/internal/app/models"
	"shiftcal-service/internal/pkg/constvars"
	"shiftcal-service/internal/pkg/dto/requests"
	"shiftcal-service/internal/pkg/dto/responses"
	"shiftcal-service/internal/pkg/exceptions"
	"shiftcal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type RosterController struct {
	Usecase        contracts.RosterUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewRosterController(usecase contracts.RosterUsecase, internalConfig *config.InternalConfig, log *zap.Logger) *RosterController {
	return &RosterController{
		Usecase:        usecase,
		InternalConfig: internalConfig,
		Log:            log,
	}
}

// GetWeekRoster serves the prepared week: fetched, normalized and
// track-assigned, ready to render without timestamp parsing.
func (c *RosterController) GetWeekRoster(w http.ResponseWriter, r *http.Request) {
	input, loc, err := c.parseWeekRequest(r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	layouts, err := c.Usecase.BuildWeekRoster(r.Context(), input)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "OK", buildWeekRosterResponse(input, loc, layouts))
}

// RefreshWeekRoster drops the week's cache entries and serves a freshly
// built week.
func (c *RosterController) RefreshWeekRoster(w http.ResponseWriter, r *http.Request) {
	input, loc, err := c.parseWeekRequest(r)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	layouts, err := c.Usecase.RefreshWeekRoster(r.Context(), input)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "OK", buildWeekRosterResponse(input, loc, layouts))
}

// parseWeekRequest reads the query parameters shared by both endpoints.
// Defaults: the configured timezone, the Monday of the current week and
// the authenticated caller's subject.
func (c *RosterController) parseWeekRequest(r *http.Request) (contracts.WeekRosterInput, *time.Location, error) {
	req := requests.WeekRoster{
		WeekStart: r.URL.Query().Get("weekStart"),
		SubjectID: r.URL.Query().Get("subjectId"),
		Timezone:  r.URL.Query().Get("tz"),
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return contracts.WeekRosterInput{}, nil, exceptions.ErrInputValidation(err)
	}

	tz := req.Timezone
	if tz == "" {
		tz = c.InternalConfig.App.Timezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return contracts.WeekRosterInput{}, nil, exceptions.ErrInvalidTimezone(err)
	}

	var weekStart models.DayWindow
	if req.WeekStart == "" {
		weekStart = models.NewDayWindow(utils.MondayOfWeek(time.Now(), loc), loc)
	} else {
		parsed, err := time.ParseInLocation(constvars.ISODateLayout, req.WeekStart, loc)
		if err != nil {
			return contracts.WeekRosterInput{}, nil, exceptions.ErrCannotParseDate(err)
		}
		weekStart = models.NewDayWindow(parsed, loc)
	}

	subjectID := req.SubjectID
	if subjectID == "" {
		if ctxSubject, ok := r.Context().Value(constvars.CONTEXT_SUBJECT_ID_KEY).(string); ok {
			subjectID = ctxSubject
		}
	}

	return contracts.WeekRosterInput{WeekStart: weekStart, SubjectID: subjectID}, loc, nil
}

func buildWeekRosterResponse(input contracts.WeekRosterInput, loc *time.Location, layouts [constvars.DaysPerWeek]contracts.DayLayout) responses.WeekRoster {
	days := make([]responses.DayRoster, 0, constvars.DaysPerWeek)
	for i, layout := range layouts {
		fragments := layout.Fragments
		if fragments == nil {
			fragments = []models.LaidOutFragment{}
		}
		days = append(days, responses.DayRoster{
			Date:      layout.Day.ISODate(),
			DayIndex:  i,
			Failed:    layout.Failed,
			Fragments: fragments,
		})
	}
	return responses.WeekRoster{
		WeekStart: input.WeekStart.ISODate(),
		Timezone:  loc.String(),
		SubjectID: input.SubjectID,
		Days:      days,
	}
}

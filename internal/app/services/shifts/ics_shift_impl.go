package shifts

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"shiftcal-service/internal/app/models"
	"shiftcal-service/internal/pkg/constvars"
	"shiftcal-service/internal/pkg/exceptions"

	ical "github.com/arran4/golang-ical"
)

// ICSShiftClient reads shifts from an iCalendar feed. One feed covers one
// subject, so the subjectID argument only tags the returned records; the
// feed itself is the scope.
type ICSShiftClient struct {
	feedUrl string
	client  *http.Client
}

func NewICSShiftClient(feedUrl string) *ICSShiftClient {
	return &ICSShiftClient{
		feedUrl: feedUrl,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *ICSShiftClient) QueryShifts(ctx context.Context, startUTC, endUTC time.Time, subjectID string) ([]models.RawShift, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.feedUrl, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrQueryShiftSource(fmt.Errorf("unexpected status %d fetching ICS feed", resp.StatusCode))
	}

	cal, err := ical.ParseCalendar(resp.Body)
	if err != nil {
		return nil, exceptions.ErrParseICSFeed(err)
	}

	shifts := make([]models.RawShift, 0)
	for _, event := range cal.Events() {
		shift, ok := mapVEvent(event, subjectID)
		if !ok {
			continue
		}
		if shift.Overlaps(startUTC, endUTC) {
			shifts = append(shifts, shift)
		}
	}
	return shifts, nil
}

// mapVEvent converts one VEVENT into a RawShift. Events without UID or
// parseable start/end are skipped; malformed entries should not sink the
// whole feed.
func mapVEvent(event *ical.VEvent, subjectID string) (models.RawShift, bool) {
	uidProp := event.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return models.RawShift{}, false
	}

	start, err := event.GetStartAt()
	if err != nil {
		return models.RawShift{}, false
	}
	end, err := event.GetEndAt()
	if err != nil {
		return models.RawShift{}, false
	}

	shift := models.RawShift{
		ID:        uidProp.Value,
		SubjectID: subjectID,
		Start:     start.UTC(),
		End:       end.UTC(),
	}
	if summary := event.GetProperty(ical.ComponentPropertySummary); summary != nil {
		shift.TeamName = summary.Value
	}
	if categories := event.GetProperty(ical.ComponentPropertyCategories); categories != nil {
		shift.Theme = categories.Value
	}
	if description := event.GetProperty(ical.ComponentPropertyDescription); description != nil {
		shift.Label = description.Value
	}
	return shift, true
}

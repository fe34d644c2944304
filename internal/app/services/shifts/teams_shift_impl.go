package shifts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"shiftcal-service/internal/app/models"
	"shiftcal-service/internal/pkg/constvars"
	"shiftcal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

const (
	teamsShiftsPath = "/me/joinedTeams/getShifts"
	teamsUsersPath  = "/users"
)

// TeamsShiftClient queries a Teams-style shift endpoint. It implements
// both contracts.ShiftSourceClient and contracts.SubjectDirectoryClient.
type TeamsShiftClient struct {
	baseUrl string
	token   string
	client  *http.Client
	limiter *rate.Limiter
}

func NewTeamsShiftClient(baseUrl, token string, requestsPerSecond int) *TeamsShiftClient {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &TeamsShiftClient{
		baseUrl: baseUrl,
		token:   token,
		client:  &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
}

// QueryShifts fetches all shifts in [startUTC, endUTC), scoped to
// subjectID when non-empty and to the caller's own identity otherwise.
// The source caps results at its page size; truncation is not retried.
func (c *TeamsShiftClient) QueryShifts(ctx context.Context, startUTC, endUTC time.Time, subjectID string) ([]models.RawShift, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrQueryShiftSource(err)
	}

	filter := fmt.Sprintf("sharedShift/startDateTime ge %s and sharedShift/endDateTime le %s",
		startUTC.UTC().Format(time.RFC3339),
		endUTC.UTC().Format(time.RFC3339),
	)
	if subjectID != "" {
		filter += fmt.Sprintf(" and userId eq '%s'", subjectID)
	}

	query := url.Values{}
	query.Set("$filter", filter)
	query.Set("$top", fmt.Sprintf("%d", constvars.ShiftQueryPageSize))

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.baseUrl+teamsShiftsPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, exceptions.ErrQueryShiftSource(fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bodyBytes))
	}

	var envelope teamsShiftEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, exceptions.ErrDecodeShiftSourceResponse(err)
	}

	shifts := make([]models.RawShift, 0, len(envelope.Value))
	for _, entry := range envelope.Value {
		shifts = append(shifts, mapTeamsShift(entry))
	}
	return shifts, nil
}

// FindSubjectIDByPrincipalName resolves a principal name (UPN or mail) to
// the directory's canonical identifier.
func (c *TeamsShiftClient) FindSubjectIDByPrincipalName(ctx context.Context, principalName string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", exceptions.ErrResolveSubject(err, principalName)
	}

	endpoint := fmt.Sprintf("%s%s/%s?$select=id", c.baseUrl, teamsUsersPath, url.PathEscape(principalName))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return "", exceptions.ErrSubjectNotFound(nil, principalName)
	}
	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", exceptions.ErrResolveSubject(fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bodyBytes), principalName)
	}

	var user teamsUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", exceptions.ErrDecodeShiftSourceResponse(err)
	}
	if user.ID == "" {
		return "", exceptions.ErrSubjectNotFound(nil, principalName)
	}
	return user.ID, nil
}

func (c *TeamsShiftClient) setHeaders(req *http.Request) {
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if c.token != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.token)
	}
}

func mapTeamsShift(entry teamsShift) models.RawShift {
	shift := models.RawShift{
		ID:        entry.ID,
		SubjectID: entry.UserID,
		TeamID:    entry.TeamID,
		Start:     entry.SharedShift.StartDateTime.UTC(),
		End:       entry.SharedShift.EndDateTime.UTC(),
		Theme:     entry.SharedShift.Theme,
		Label:     entry.SharedShift.DisplayName,
	}
	if entry.TeamInfo != nil {
		shift.TeamName = entry.TeamInfo.DisplayName
	}
	if entry.SchedulingGroupInfo != nil {
		shift.GroupName = entry.SchedulingGroupInfo.DisplayName
	}
	return shift
}

package shifts

import "time"

// Wire types of the Teams-style shift endpoint.

type teamsShiftEnvelope struct {
	Value []teamsShift `json:"value"`
}

type teamsShift struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	TeamID   string `json:"teamId"`
	TeamInfo *struct {
		TeamID      string `json:"teamId"`
		DisplayName string `json:"displayName"`
	} `json:"teamInfo,omitempty"`
	SchedulingGroupInfo *struct {
		SchedulingGroupID string `json:"schedulingGroupId"`
		DisplayName       string `json:"displayName"`
	} `json:"schedulingGroupInfo,omitempty"`
	SharedShift struct {
		StartDateTime time.Time `json:"startDateTime"`
		EndDateTime   time.Time `json:"endDateTime"`
		DisplayName   string    `json:"displayName,omitempty"`
		Theme         string    `json:"theme,omitempty"`
	} `json:"sharedShift"`
}

type teamsUser struct {
	ID string `json:"id"`
}

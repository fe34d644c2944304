package requests

// WeekRoster carries the query parameters of the week endpoints. Empty
// values fall back to defaults: the Monday of the current week, the
// caller's own identity, and the configured timezone.
type WeekRoster struct {
	WeekStart string `json:"week_start" validate:"omitempty,datetime=2006-01-02"`
	SubjectID string `json:"subject_id" validate:"omitempty,max=256"`
	Timezone  string `json:"timezone" validate:"omitempty,max=64"`
}

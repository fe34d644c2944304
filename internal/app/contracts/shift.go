package contracts

import (
	"context"
	"time"

	"shiftcal-service/internal/app/models"
)

// ShiftSourceClient queries the external shift data source for raw shift
// records overlapping a UTC instant range. An empty subjectID means the
// source's own "caller identity" scope. Results are capped by the source's
// page size; truncation is not retried here.
type ShiftSourceClient interface {
	QueryShifts(ctx context.Context, startUTC, endUTC time.Time, subjectID string) ([]models.RawShift, error)
}

// SubjectDirectoryClient resolves a human-readable principal name to the
// source's canonical subject identifier.
type SubjectDirectoryClient interface {
	FindSubjectIDByPrincipalName(ctx context.Context, principalName string) (string, error)
}

// SubjectResolver accepts either a canonical identifier, a principal name
// or the empty string (caller identity) and returns the canonical form.
type SubjectResolver interface {
	Resolve(ctx context.Context, input string) (string, error)
}

package subjects

import (
	"context"
	"errors"
	"regexp"

	"shiftcal-service/internal/app/contracts"
	"shiftcal-service/internal/pkg/exceptions"
)

var guidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

type subjectResolver struct {
	directory contracts.SubjectDirectoryClient
}

// NewSubjectResolver builds a resolver backed by the given directory.
// directory may be nil for sources without a lookup (e.g. ICS feeds); such
// resolvers only accept canonical identifiers.
func NewSubjectResolver(directory contracts.SubjectDirectoryClient) contracts.SubjectResolver {
	return &subjectResolver{directory: directory}
}

// Resolve passes empty input (caller identity) and canonical GUIDs
// through untouched; anything else is treated as a principal name and
// looked up in the directory.
func (r *subjectResolver) Resolve(ctx context.Context, input string) (string, error) {
	if input == "" {
		return "", nil
	}
	if guidPattern.MatchString(input) {
		return input, nil
	}
	if r.directory == nil {
		return "", exceptions.ErrResolveSubject(errors.New("no directory lookup available for this source"), input)
	}
	return r.directory.FindSubjectIDByPrincipalName(ctx, input)
}

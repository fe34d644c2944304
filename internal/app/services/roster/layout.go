package roster

import (
	"sort"

	"shiftcal-service/internal/app/models"
)

// trackSpan is the merged extent of everything assigned to one track so
// far: assigning a fragment widens the span to cover the union.
type trackSpan struct {
	start float64
	end   float64
}

func (t trackSpan) overlaps(start, end float64) bool {
	return start < t.end && end > t.start
}

// SortFragmentsByStart orders fragments by ascending start hour; ties keep
// their original order. Layout and its consumers must agree on this order
// for assignments to be reproducible.
func SortFragmentsByStart(fragments []models.ShiftFragment) []models.ShiftFragment {
	sorted := make([]models.ShiftFragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartHour < sorted[j].StartHour
	})
	return sorted
}

// LayoutDay assigns every fragment of one day a horizontal track via
// greedy interval partitioning: scan tracks in order, take the first one
// whose span the fragment does not overlap, widen that span, or open a new
// track at the end. The recorded TrackCount is the number of tracks that
// exist right after the assignment, deliberately NOT the day's final
// maximum. The greedy scan does not minimize track count; it trades that
// for deterministic, order-stable output.
func LayoutDay(fragments []models.ShiftFragment) map[string]models.TrackAssignment {
	assignments := make(map[string]models.TrackAssignment, len(fragments))

	var tracks []trackSpan
	for _, fragment := range SortFragmentsByStart(fragments) {
		if fragment.EndHour <= fragment.StartHour {
			continue
		}

		assigned := -1
		for i := range tracks {
			if !tracks[i].overlaps(fragment.StartHour, fragment.EndHour) {
				if fragment.StartHour < tracks[i].start {
					tracks[i].start = fragment.StartHour
				}
				if fragment.EndHour > tracks[i].end {
					tracks[i].end = fragment.EndHour
				}
				assigned = i
				break
			}
		}
		if assigned == -1 {
			tracks = append(tracks, trackSpan{start: fragment.StartHour, end: fragment.EndHour})
			assigned = len(tracks) - 1
		}

		assignments[fragment.FragmentID] = models.TrackAssignment{
			TrackIndex: assigned,
			TrackCount: len(tracks),
		}
	}
	return assignments
}

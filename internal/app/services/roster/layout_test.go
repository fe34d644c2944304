package roster

import (
	"testing"

	"shiftcal-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fragment(id string, start, end float64) models.ShiftFragment {
	return models.ShiftFragment{FragmentID: id, ShiftID: id, StartHour: start, EndHour: end}
}

func TestLayoutDay(t *testing.T) {
	t.Run("empty day yields no assignments", func(t *testing.T) {
		assert.Empty(t, LayoutDay(nil))
	})

	t.Run("single fragment lands on track zero", func(t *testing.T) {
		assignments := LayoutDay([]models.ShiftFragment{fragment("a", 9, 17)})

		require.Contains(t, assignments, "a")
		assert.Equal(t, 0, assignments["a"].TrackIndex)
		assert.Equal(t, 1, assignments["a"].TrackCount)
	})

	t.Run("overlapping fragment opens a new track", func(t *testing.T) {
		assignments := LayoutDay([]models.ShiftFragment{
			fragment("a", 9, 12),
			fragment("b", 10, 11.5),
		})

		assert.Equal(t, 0, assignments["a"].TrackIndex)
		assert.Equal(t, 1, assignments["b"].TrackIndex)
		assert.Equal(t, 1, assignments["a"].TrackCount)
		assert.Equal(t, 2, assignments["b"].TrackCount)
	})

	t.Run("disjoint fragment reuses the first free track", func(t *testing.T) {
		assignments := LayoutDay([]models.ShiftFragment{
			fragment("a", 9, 12),
			fragment("b", 10, 11.5),
			fragment("c", 12.5, 14),
		})

		// c clears track 0's widened span [9, 12] and joins it.
		assert.Equal(t, 0, assignments["c"].TrackIndex)
		assert.Equal(t, 2, assignments["c"].TrackCount)
	})

	t.Run("track span widens as fragments join it", func(t *testing.T) {
		assignments := LayoutDay([]models.ShiftFragment{
			fragment("a", 9, 12),
			fragment("b", 10, 11.5),
			fragment("c", 12.5, 14),
			fragment("d", 13, 13.5),
		})

		// d overlaps track 0's span [9, 14] and must fall back to track 1,
		// whose span is still [10, 11.5].
		assert.Equal(t, 1, assignments["d"].TrackIndex)
		assert.Equal(t, 2, assignments["d"].TrackCount)
	})

	t.Run("track count is the running count at assignment time", func(t *testing.T) {
		assignments := LayoutDay([]models.ShiftFragment{
			fragment("a", 8, 10),
			fragment("b", 8.5, 11),
			fragment("c", 9, 12),
		})

		assert.Equal(t, 1, assignments["a"].TrackCount)
		assert.Equal(t, 2, assignments["b"].TrackCount)
		assert.Equal(t, 3, assignments["c"].TrackCount)
	})

	t.Run("input order does not change the outcome", func(t *testing.T) {
		forward := LayoutDay([]models.ShiftFragment{
			fragment("a", 9, 12),
			fragment("b", 10, 11.5),
			fragment("c", 12.5, 14),
		})
		reversed := LayoutDay([]models.ShiftFragment{
			fragment("c", 12.5, 14),
			fragment("b", 10, 11.5),
			fragment("a", 9, 12),
		})

		assert.Equal(t, forward, reversed)
	})

	t.Run("zero duration fragments are skipped", func(t *testing.T) {
		assignments := LayoutDay([]models.ShiftFragment{
			fragment("a", 9, 9),
			fragment("b", 10, 11),
		})

		assert.NotContains(t, assignments, "a")
		assert.Contains(t, assignments, "b")
	})

	t.Run("touching endpoints do not overlap", func(t *testing.T) {
		assignments := LayoutDay([]models.ShiftFragment{
			fragment("a", 9, 12),
			fragment("b", 12, 15),
		})

		assert.Equal(t, 0, assignments["a"].TrackIndex)
		assert.Equal(t, 0, assignments["b"].TrackIndex)
	})
}

func TestSortFragmentsByStart(t *testing.T) {
	sorted := SortFragmentsByStart([]models.ShiftFragment{
		fragment("late", 14, 16),
		fragment("tie2", 9, 10),
		fragment("tie1", 9, 11),
	})

	require.Len(t, sorted, 3)
	assert.Equal(t, "tie2", sorted[0].FragmentID)
	assert.Equal(t, "tie1", sorted[1].FragmentID, "equal starts keep their input order")
	assert.Equal(t, "late", sorted[2].FragmentID)
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMondayOfWeek(t *testing.T) {
	// 2026-01-07 is a Wednesday.
	wednesday := time.Date(2026, 1, 7, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), MondayOfWeek(wednesday, time.UTC))

	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, MondayOfWeek(monday, time.UTC), "Monday maps to itself")

	sunday := time.Date(2026, 1, 11, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, monday, MondayOfWeek(sunday, time.UTC), "Sunday belongs to the preceding Monday")
}

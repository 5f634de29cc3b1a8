package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

type startEnd struct {
	start, end time.Time
}

// parseSlot turns a generated slot back into absolute start/end instants so
// properties can be asserted on real times.
func parseSlot(t *testing.T, date, timeRange string, loc *time.Location) startEnd {
	t.Helper()
	parts := strings.SplitN(timeRange, " - ", 2)
	require.Len(t, parts, 2)

	start, err := time.ParseInLocation("2006-01-02 03:04 PM", date+" "+parts[0], loc)
	require.NoError(t, err)
	end, err := time.ParseInLocation("2006-01-02 03:04 PM", date+" "+parts[1], loc)
	require.NoError(t, err)
	return startEnd{start: start, end: end}
}

func TestGenerateSlotsWithinBusinessHoursAndHorizon(t *testing.T) {
	loc := mustLocation(t)
	now := time.Date(2024, 5, 1, 14, 10, 0, 0, loc)
	horizon := now.Add(48 * time.Hour)

	slots := GenerateSlots(now)
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		se := parseSlot(t, slot.Date, slot.TimeRange, loc)
		start, end := se.start, se.end

		assert.Equal(t, 30*time.Minute, end.Sub(start), "slot %v has wrong length", slot)
		assert.GreaterOrEqual(t, start.Hour(), 9, "slot %v starts before opening", slot)
		assert.False(t, end.After(time.Date(start.Year(), start.Month(), start.Day(), 21, 0, 0, 0, loc)),
			"slot %v crosses closing time", slot)
		assert.False(t, start.Before(now), "slot %v starts in the past", slot)
		assert.False(t, end.After(horizon), "slot %v extends past the horizon", slot)
	}
}

func TestGenerateSlotsLateEveningBoundary(t *testing.T) {
	loc := mustLocation(t)
	// 20:45 rounds up to 21:00; no window fits today, so the first slot is
	// tomorrow at opening time.
	now := time.Date(2024, 5, 1, 20, 45, 0, 0, loc)

	slots := GenerateSlots(now)
	require.NotEmpty(t, slots)

	assert.Equal(t, "2024-05-02", slots[0].Date)
	assert.Equal(t, "09:00 AM - 09:30 AM", slots[0].TimeRange)
}

func TestGenerateSlotsLastWindowOfDay(t *testing.T) {
	loc := mustLocation(t)
	now := time.Date(2024, 5, 1, 20, 15, 0, 0, loc)

	slots := GenerateSlots(now)
	require.NotEmpty(t, slots)

	// 20:15 rounds up to 20:30, leaving exactly one window today.
	assert.Equal(t, "2024-05-01", slots[0].Date)
	assert.Equal(t, "08:30 PM - 09:00 PM", slots[0].TimeRange)
	assert.Equal(t, "2024-05-02", slots[1].Date)
	assert.Equal(t, "09:00 AM - 09:30 AM", slots[1].TimeRange)
}

func TestGenerateSlotsClampsEarlyMorningToOpening(t *testing.T) {
	loc := mustLocation(t)
	now := time.Date(2024, 5, 1, 6, 5, 0, 0, loc)

	slots := GenerateSlots(now)
	require.NotEmpty(t, slots)

	assert.Equal(t, "2024-05-01", slots[0].Date)
	assert.Equal(t, "09:00 AM - 09:30 AM", slots[0].TimeRange)
}

func TestGenerateSlotsOnBoundaryStartsImmediately(t *testing.T) {
	loc := mustLocation(t)
	now := time.Date(2024, 5, 1, 14, 30, 0, 0, loc)

	slots := GenerateSlots(now)
	require.NotEmpty(t, slots)
	assert.Equal(t, "02:30 PM - 03:00 PM", slots[0].TimeRange)
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	loc := mustLocation(t)
	now := time.Date(2024, 5, 1, 11, 7, 0, 0, loc)

	first := GenerateSlots(now)
	second := GenerateSlots(now)
	assert.Equal(t, first, second)

	// Ordered by start time.
	for i := 1; i < len(first); i++ {
		prev := parseSlot(t, first[i-1].Date, first[i-1].TimeRange, loc)
		cur := parseSlot(t, first[i].Date, first[i].TimeRange, loc)
		assert.True(t, prev.start.Before(cur.start), "slots out of order at %d", i)
	}
}

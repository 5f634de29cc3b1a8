package booking

import (
	"time"

	"arenaslot/models"
)

// Business-hour and horizon constants for slot generation. Windows are
// 30 minutes long, never cross the 09:00-21:00 boundary, and are derived for
// a rolling 48-hour horizon in the tournament's fixed timezone.
const (
	businessOpenHour  = 9
	businessCloseHour = 21
	slotLength        = 30 * time.Minute
	bookingHorizon    = 48 * time.Hour
)

// GenerateSlots derives the ordered set of bookable windows from now. It is
// pure and deterministic: repeated calls with the same instant return the
// same sequence. The first day starts at now rounded up to the next
// half-hour boundary (clamped to opening time); subsequent days start at
// 09:00. No slot extends beyond now+48h.
func GenerateSlots(now time.Time) []models.Slot {
	horizon := now.Add(bookingHorizon)

	var slots []models.Slot
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for ; day.Before(horizon); day = day.AddDate(0, 0, 1) {
		dayOpen := time.Date(day.Year(), day.Month(), day.Day(), businessOpenHour, 0, 0, 0, day.Location())
		dayClose := time.Date(day.Year(), day.Month(), day.Day(), businessCloseHour, 0, 0, 0, day.Location())

		start := dayOpen
		if sameDay(day, now) {
			start = roundUpToHalfHour(now)
			if start.Before(dayOpen) {
				start = dayOpen
			}
			// The rest of today is past closing; move on to tomorrow.
			if !start.Before(dayClose) {
				continue
			}
		}

		for s := start; ; {
			e := s.Add(slotLength)
			if e.After(dayClose) || e.After(horizon) {
				break
			}
			slots = append(slots, models.Slot{
				Date:      s.Format("2006-01-02"),
				TimeRange: s.Format("03:04 PM") + " - " + e.Format("03:04 PM"),
			})
			s = e
		}
	}
	return slots
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// roundUpToHalfHour returns t rounded up to the next :00 or :30 boundary.
// An instant already on a boundary is returned unchanged (seconds dropped).
func roundUpToHalfHour(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	if rem := t.Minute() % 30; rem != 0 {
		t = t.Add(time.Duration(30-rem) * time.Minute)
	}
	return t
}

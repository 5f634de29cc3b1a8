package models

// Slot is a derived 30-minute bookable window. Slots are generated on demand
// for a rolling horizon and are never persisted; a booking references one
// through its date and time-range label.
type Slot struct {
	Date      string `json:"date"`      // calendar day, "2006-01-02"
	TimeRange string `json:"timeRange"` // e.g. "09:00 AM - 09:30 AM"
}

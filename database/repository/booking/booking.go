package bookingRepo

import (
	"arenaslot/models"
)

// BookingRepository defines the data access methods for booking records.
// Bookings are created once after payment settles and mutated only by admin
// actions; there is deliberately no capacity or uniqueness constraint between
// a generated slot and the bookings referencing it.
type BookingRepository interface {
	// Create persists a new booking, assigning its id and creation time.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// Find retrieves raw booking records matching the filter.
	Find(filter models.BookingFilter) ([]models.Booking, error)
	// Count returns the number of bookings matching the filter.
	Count(filter models.BookingFilter) (int64, error)
	// FindViews retrieves bookings matching the filter joined with the
	// payer's profile.
	FindViews(filter models.BookingFilter) ([]models.BookingView, error)
	// FindViewsByUser retrieves one payer's enriched bookings, newest first.
	FindViewsByUser(userID string) ([]models.BookingView, error)
	// FindWinners retrieves the public winner projections.
	FindWinners() ([]models.WinnerView, error)
	// BulkUpdate applies room/note fields to every booking matching the
	// filter and reports matched vs modified counts.
	BulkUpdate(filter models.BookingFilter, fields models.BulkRoomUpdate) (*models.BulkUpdateResult, error)
	// SetWinner flips the winner flag on one booking and returns the
	// updated record.
	SetWinner(id string, isWinner bool) (*models.Booking, error)
}

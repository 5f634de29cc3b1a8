package booking

import (
	"context"
	"time"

	"arenaslot/models"
)

// ConfirmBookingRequest carries the fields required to persist a booking
// after the client completes payment. All fields except PaymentStatus are
// required; SlotDate is normalized to UTC midnight of its calendar day.
type ConfirmBookingRequest struct {
	UserID        string
	PackageID     string
	Slot          string
	SlotDate      time.Time
	Amount        int64
	PaymentStatus string
	PaymentID     string
}

// NotificationRequest selects bookings by slot label and/or day and fans a
// message out to their payers over the requested channel.
type NotificationRequest struct {
	Slot    string
	Date    string
	Type    models.Channel
	Message string
}

// BulkAnnounceRequest applies room details to every booking matching the
// slot/day/package-price criteria.
type BulkAnnounceRequest struct {
	Slot            string
	Date            string
	SelectedPackage int64
	Note            string
	RoomID          string
	RoomPass        string
}

// BookingService is the orchestrator over slot generation, the payment
// gateway, the booking store and the notification dispatcher.
type BookingService interface {
	// AvailableSlots generates the bookable windows for the rolling horizon.
	AvailableSlots() []models.Slot
	// CreateOrder mints a gateway payment order for the given amount.
	CreateOrder(amount int64) (*models.PaymentOrder, error)
	// ConfirmBooking persists a booking record. Payment verification is a
	// separate step; the gateway callback arrives independently of this
	// write.
	ConfirmBooking(req ConfirmBookingRequest) (*models.Booking, error)
	// ListBookings returns enriched booking views matching the filter.
	ListBookings(filter models.BookingFilter) ([]models.BookingView, error)
	// MyBookings returns one payer's enriched bookings, newest first.
	MyBookings(userID string) ([]models.BookingView, error)
	// CountBookings counts bookings matching the filter.
	CountBookings(filter models.BookingFilter) (int64, error)
	// SetWinner flips the winner flag on a booking.
	SetWinner(id string, isWinner bool) (*models.Booking, error)
	// Winners lists the public winner projections.
	Winners() ([]models.WinnerView, error)
	// Notify dispatches a message to the payers of all matching bookings.
	Notify(ctx context.Context, req NotificationRequest) (*models.DispatchReport, error)
	// BulkAnnounce applies room details to all matching bookings.
	BulkAnnounce(req BulkAnnounceRequest) (*models.BulkUpdateResult, error)
}

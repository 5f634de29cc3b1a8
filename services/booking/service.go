package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "arenaslot/database/repository/booking"
	"arenaslot/models"
	"arenaslot/services/notification"
	"arenaslot/services/payment"
	"arenaslot/utils"

	"go.uber.org/zap"
)

// DefaultBookingService is the production BookingService. Collaborators are
// injected at startup so tests can substitute fakes.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Gateway    payment.Gateway
	Dispatcher notification.Dispatcher
	// Location is the fixed timezone slots are generated in.
	Location *time.Location
}

// AvailableSlots generates the bookable windows for the rolling horizon.
func (s *DefaultBookingService) AvailableSlots() []models.Slot {
	return GenerateSlots(time.Now().In(s.Location))
}

// CreateOrder mints a gateway payment order for the given amount (minor
// units). The gateway's order id is returned verbatim.
func (s *DefaultBookingService) CreateOrder(amount int64) (*models.PaymentOrder, error) {
	if amount <= 0 {
		return nil, utils.NewValidationError("amount is required")
	}

	receipt := fmt.Sprintf("order_receipt_%d", time.Now().UnixMilli())
	order, err := s.Gateway.CreateOrder(amount, receipt)
	if err != nil {
		return nil, utils.NewDependencyError("payment gateway order creation failed", err)
	}
	return order, nil
}

// ConfirmBooking validates the request and persists the booking with its
// slot date truncated to UTC midnight. There is intentionally no capacity
// check against the slot: concurrent confirmations for the same window all
// persist independently.
func (s *DefaultBookingService) ConfirmBooking(req ConfirmBookingRequest) (*models.Booking, error) {
	switch {
	case req.UserID == "":
		return nil, utils.NewValidationError("userId is required")
	case req.PackageID == "":
		return nil, utils.NewValidationError("packageId is required")
	case req.Slot == "":
		return nil, utils.NewValidationError("slot is required")
	case req.Amount <= 0:
		return nil, utils.NewValidationError("amount is required")
	case req.PaymentID == "":
		return nil, utils.NewValidationError("paymentId is required")
	case req.SlotDate.IsZero():
		return nil, utils.NewValidationError("slotdate is required")
	}

	booking := &models.Booking{
		UserID:        req.UserID,
		PackageID:     req.PackageID,
		Slot:          req.Slot,
		SlotDate:      utcMidnight(req.SlotDate),
		Amount:        req.Amount,
		PaymentStatus: req.PaymentStatus,
		PaymentID:     req.PaymentID,
	}
	if err := s.Repo.Create(booking); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking confirmed",
		zap.String("bookingId", booking.ID),
		zap.String("userId", booking.UserID),
		zap.String("slot", booking.Slot),
	)
	return booking, nil
}

// utcMidnight truncates t to 00:00:00 UTC of its UTC calendar day.
func utcMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ListBookings returns enriched booking views matching the filter.
func (s *DefaultBookingService) ListBookings(filter models.BookingFilter) ([]models.BookingView, error) {
	return s.Repo.FindViews(filter)
}

// MyBookings returns one payer's enriched bookings, newest first.
func (s *DefaultBookingService) MyBookings(userID string) ([]models.BookingView, error) {
	if userID == "" {
		return nil, utils.NewValidationError("user id is required")
	}
	return s.Repo.FindViewsByUser(userID)
}

// CountBookings counts bookings matching the filter.
func (s *DefaultBookingService) CountBookings(filter models.BookingFilter) (int64, error) {
	return s.Repo.Count(filter)
}

// SetWinner flips the winner flag on a booking.
func (s *DefaultBookingService) SetWinner(id string, isWinner bool) (*models.Booking, error) {
	return s.Repo.SetWinner(id, isWinner)
}

// Winners lists the public winner projections.
func (s *DefaultBookingService) Winners() ([]models.WinnerView, error) {
	return s.Repo.FindWinners()
}

// Notify resolves the bookings matching the slot/day criteria, extracts the
// payers' unique contact addresses and fans the message out over the
// requested channels. Zero matching bookings is a not-found condition, not
// an empty dispatch.
func (s *DefaultBookingService) Notify(ctx context.Context, req NotificationRequest) (*models.DispatchReport, error) {
	channels, err := resolveChannels(req.Type)
	if err != nil {
		return nil, err
	}
	if req.Message == "" {
		return nil, utils.NewValidationError("message is required")
	}

	views, err := s.Repo.FindViews(models.BookingFilter{Slot: req.Slot, Date: req.Date})
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, utils.NewNotFoundError("no bookings found for the given criteria")
	}

	emails := uniqueAddresses(views, func(v models.BookingView) string { return v.UserEmail })
	phones := uniqueAddresses(views, func(v models.BookingView) string { return v.UserWhatsapp })

	report := s.Dispatcher.DispatchAll(ctx, channels, emails, phones, "Notification", req.Message)
	return &report, nil
}

// resolveChannels expands the channel selector into the concrete transports.
func resolveChannels(selector models.Channel) ([]models.Channel, error) {
	switch selector {
	case models.ChannelEmail, models.ChannelSMS, models.ChannelWhatsApp:
		return []models.Channel{selector}, nil
	case models.ChannelAll:
		return []models.Channel{models.ChannelEmail, models.ChannelSMS, models.ChannelWhatsApp}, nil
	default:
		return nil, utils.NewValidationError(fmt.Sprintf("unknown notification type %q", selector))
	}
}

// uniqueAddresses collects distinct, present contact addresses from the
// views. The "N/A" enrichment sentinel never becomes a recipient.
func uniqueAddresses(views []models.BookingView, pick func(models.BookingView) string) []string {
	seen := make(map[string]bool, len(views))
	var out []string
	for _, v := range views {
		addr := pick(v)
		if addr == "" || addr == "N/A" || seen[addr] {
			continue
		}
		seen[addr] = true
		out = append(out, addr)
	}
	return out
}

// BulkAnnounce applies room details to every matching booking and reports
// the matched/modified counts. Zero matches is a not-found condition and the
// store is left untouched.
func (s *DefaultBookingService) BulkAnnounce(req BulkAnnounceRequest) (*models.BulkUpdateResult, error) {
	filter := models.BookingFilter{
		Slot:   req.Slot,
		Date:   req.Date,
		Amount: req.SelectedPackage,
	}
	fields := models.BulkRoomUpdate{Note: req.Note, RoomID: req.RoomID, RoomPass: req.RoomPass}

	result, err := s.Repo.BulkUpdate(filter, fields)
	if err != nil {
		return nil, err
	}
	if result.Matched == 0 {
		return nil, utils.NewNotFoundError("no bookings found to update with the given criteria")
	}
	return result, nil
}

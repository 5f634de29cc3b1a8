package handlers

import (
	"net/http"
	"strconv"
	"time"

	"arenaslot/config"
	"arenaslot/models"
	booking "arenaslot/services/booking"
	payment "arenaslot/services/payment"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// GenerateSlotsHandler returns the bookable windows for the rolling horizon.
func (h *BookingHandler) GenerateSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": h.Svc.AvailableSlots()})
}

func (h *BookingHandler) CreateOrderHandler(c *gin.Context) {
	var payload struct {
		Amount int64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	order, err := h.Svc.CreateOrder(payload.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	var payload struct {
		PackageID     string `json:"packageId"`
		Slot          string `json:"slot"`
		SlotDate      string `json:"slotdate"`
		Amount        int64  `json:"amount"`
		PaymentStatus string `json:"paymentStatus"`
		PaymentID     string `json:"paymentId"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}

	slotDate, err := parseSlotDate(payload.SlotDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slotdate"})
		return
	}

	created, err := h.Svc.ConfirmBooking(booking.ConfirmBookingRequest{
		UserID:        userID,
		PackageID:     payload.PackageID,
		Slot:          payload.Slot,
		SlotDate:      slotDate,
		Amount:        payload.Amount,
		PaymentStatus: payload.PaymentStatus,
		PaymentID:     payload.PaymentID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// VerifyPaymentHandler checks a gateway callback signature against the
// configured secret.
func (h *BookingHandler) VerifyPaymentHandler(c *gin.Context) {
	var payload models.PaymentCallback
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	err := payment.VerifySignature(payload.OrderID, payload.PaymentID, payload.Signature, config.AppConfig.RazorpaySecret)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "payment verified",
		"paymentId": payload.PaymentID,
	})
}

func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	filter := models.BookingFilter{
		PaymentStatus: c.Query("paymentStatus"),
		SlotPrefix:    c.Query("slot"),
		UserID:        c.Query("userId"),
		StartDate:     c.Query("startDate"),
		EndDate:       c.Query("endDate"),
	}

	views, err := h.Svc.ListBookings(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}

	views, err := h.Svc.MyBookings(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *BookingHandler) CountBookingsHandler(c *gin.Context) {
	filter := models.BookingFilter{
		Slot: c.Query("slot"),
		Date: c.Query("date"),
	}
	if raw := c.Query("selectedPackage"); raw != "" {
		amount, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selectedPackage"})
			return
		}
		filter.Amount = amount
	}

	total, err := h.Svc.CountBookings(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

func (h *BookingHandler) UpdateWinnerHandler(c *gin.Context) {
	var payload struct {
		IsWinner *bool `json:"isWinner"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsWinner == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isWinner is required"})
		return
	}

	updated, err := h.Svc.SetWinner(c.Param("id"), *payload.IsWinner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "winner status updated", "data": updated})
}

func (h *BookingHandler) WinnersHandler(c *gin.Context) {
	winners, err := h.Svc.Winners()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, winners)
}

func (h *BookingHandler) NotifyHandler(c *gin.Context) {
	var payload struct {
		Slot    string `json:"slot"`
		Date    string `json:"date"`
		Type    string `json:"notificationType"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	report, err := h.Svc.Notify(c.Request.Context(), booking.NotificationRequest{
		Slot:    payload.Slot,
		Date:    payload.Date,
		Type:    models.Channel(payload.Type),
		Message: payload.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if report.Failed() {
		status = http.StatusBadGateway
	}
	c.JSON(status, report)
}

func (h *BookingHandler) BulkUpdateHandler(c *gin.Context) {
	var payload struct {
		Slot            string `json:"slot"`
		Date            string `json:"date"`
		SelectedPackage int64  `json:"selectedPackage"`
		Note            string `json:"note"`
		RoomID          string `json:"roomid"`
		RoomPass        string `json:"roompass"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	result, err := h.Svc.BulkAnnounce(booking.BulkAnnounceRequest{
		Slot:            payload.Slot,
		Date:            payload.Date,
		SelectedPackage: payload.SelectedPackage,
		Note:            payload.Note,
		RoomID:          payload.RoomID,
		RoomPass:        payload.RoomPass,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bookings updated", "matched": result.Matched, "modified": result.Modified})
}

// parseSlotDate accepts either a full RFC3339 timestamp or a bare calendar
// day.
func parseSlotDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

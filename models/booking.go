package models

import "time"

// Payment status values for a booking.
const (
	PaymentPending = "Pending"
	PaymentSuccess = "Success"
	PaymentFailed  = "Failed"
)

// Booking represents a persisted tournament slot reservation. A booking is
// created after the payment flow completes and is never deleted; admin
// actions mutate the winner flag and the room fields.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	PackageID     string    `bson:"packageId" json:"packageId"`
	Slot          string    `bson:"slot" json:"slot"`         // time-range label, e.g. "09:00 AM - 09:30 AM"
	SlotDate      time.Time `bson:"slotdate" json:"slotdate"` // truncated to UTC midnight
	Amount        int64     `bson:"amount" json:"amount"`     // currency minor units (paise)
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	PaymentID     string    `bson:"paymentId" json:"paymentId"`
	IsWinner      bool      `bson:"isWinner" json:"isWinner"`
	Note          string    `bson:"note" json:"note"`
	RoomID        string    `bson:"roomid" json:"roomid"`
	RoomPass      string    `bson:"roompass" json:"roompass"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingView is a read-only projection of a booking joined with the payer's
// profile. Missing payer records degrade to "N/A" fields instead of failing
// the listing.
type BookingView struct {
	ID            string    `bson:"id" json:"id"`
	PackageID     string    `bson:"packageId" json:"packageId"`
	Slot          string    `bson:"slot" json:"slot"`
	SlotDate      time.Time `bson:"slotdate" json:"slotdate"`
	Amount        int64     `bson:"amount" json:"amount"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	PaymentID     string    `bson:"paymentId" json:"paymentId"`
	IsWinner      bool      `bson:"isWinner" json:"isWinner"`
	Note          string    `bson:"note" json:"note"`
	RoomID        string    `bson:"roomid" json:"roomid"`
	RoomPass      string    `bson:"roompass" json:"roompass"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`

	UserID       string `bson:"userId" json:"userId"`
	UserFullName string `bson:"userFullName" json:"userFullName"`
	UserEmail    string `bson:"userEmail" json:"userEmail"`
	UserGameID   string `bson:"userGameId" json:"userGameId"`
	UserGameName string `bson:"userGameName" json:"userGameName"`
	UserWhatsapp string `bson:"userWhatsapp" json:"userWhatsapp"`
}

// WinnerView is the trimmed public projection of a winning booking.
type WinnerView struct {
	Slot         string    `bson:"slot" json:"slot"`
	SlotDate     time.Time `bson:"slotdate" json:"slotdate"`
	IsWinner     bool      `bson:"isWinner" json:"isWinner"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UserFullName string    `bson:"userFullName" json:"userFullName"`
	UserGameID   string    `bson:"userGameId" json:"userGameId"`
}

// BookingFilter describes the criteria accepted by booking queries. Zero
// values mean "not filtered". Slot matches the label exactly; SlotPrefix
// matches case-insensitively on the leading part of the label. Dates are
// calendar days ("2006-01-02") normalized to UTC day boundaries.
type BookingFilter struct {
	PaymentStatus string
	Slot          string
	SlotPrefix    string
	UserID        string
	Date          string
	StartDate     string
	EndDate       string
	Amount        int64
}

// BulkRoomUpdate carries the fields applied by a filtered bulk update.
// Empty fields are left untouched.
type BulkRoomUpdate struct {
	Note     string `json:"note"`
	RoomID   string `json:"roomid"`
	RoomPass string `json:"roompass"`
}

// BulkUpdateResult reports how many bookings a bulk update touched.
type BulkUpdateResult struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
}

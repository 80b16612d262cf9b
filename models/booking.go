package models

import "time"

// Booking status values. Only confirmed bookings block availability.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// SlotWindow is a by-value snapshot of a catalog slot's time window.
// Bookings carry their own copy so catalog edits never rewrite history.
type SlotWindow struct {
	Start string `bson:"start" json:"start"` // "HH:MM"
	End   string `bson:"end" json:"end"`     // "HH:MM"
}

// Booking represents a booking record for a screen on a calendar date.
type Booking struct {
	ID            string     `bson:"id" json:"id"`
	ScreenID      string     `bson:"screenId" json:"screenId"`
	Date          time.Time  `bson:"date" json:"date"` // calendar date; stored as BSON datetime
	Slot          SlotWindow `bson:"slot" json:"slot"`
	SlotName      string     `bson:"slotName,omitempty" json:"slotName,omitempty"`
	CustomerName  string     `bson:"customerName" json:"customerName"`
	CustomerEmail string     `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string     `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	Guests        int        `bson:"guests,omitempty" json:"guests,omitempty"`
	TotalPrice    float64    `bson:"totalPrice" json:"totalPrice"`
	PaymentID     string     `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Status        string     `bson:"status" json:"status"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// CreateBookingRequest defines the payload for creating a booking.
type CreateBookingRequest struct {
	ScreenID      string `json:"screenId" binding:"required"`
	Date          string `json:"date" binding:"required"` // "YYYY-MM-DD"
	SlotID        string `json:"slotId" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	Guests        int    `json:"guests,omitempty"`
}

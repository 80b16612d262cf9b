package models

import "time"

// Contact request status values.
const (
	ContactStatusNew     = "new"
	ContactStatusHandled = "handled"
)

// ContactRequest is a public enquiry submitted from the site.
type ContactRequest struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message       string    `bson:"message" json:"message"`
	ScreenID      string    `bson:"screenId,omitempty" json:"screenId,omitempty"`
	PreferredDate string    `bson:"preferredDate,omitempty" json:"preferredDate,omitempty"` // "YYYY-MM-DD"
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// CreateContactRequest defines the public submission payload.
type CreateContactRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone,omitempty"`
	Message       string `json:"message" binding:"required"`
	ScreenID      string `json:"screenId,omitempty"`
	PreferredDate string `json:"preferredDate,omitempty"`
}

// ContactNotifyPayload is the asynq task payload for admin notifications.
type ContactNotifyPayload struct {
	ContactID string `json:"contactId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	NotifyTo  string `json:"notifyTo"`
}

// BookingReminderPayload is the asynq task payload for booking reminders.
type BookingReminderPayload struct {
	BookingID     string `json:"bookingId"`
	ScreenID      string `json:"screenId"`
	Date          string `json:"date"` // "YYYY-MM-DD"
	Start         string `json:"start"`
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
}

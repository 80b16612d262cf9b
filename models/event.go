package models

import "time"

// Event is a promotional or scheduled happening, optionally tied to a screen.
type Event struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	ScreenID    string    `bson:"screenId,omitempty" json:"screenId,omitempty"`
	Date        time.Time `bson:"date" json:"date"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateEventRequest defines the payload for creating an event.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	ScreenID    string `json:"screenId,omitempty"`
	Date        string `json:"date" binding:"required"` // "YYYY-MM-DD"
	ImageURL    string `json:"imageUrl,omitempty"`
}

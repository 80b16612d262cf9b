package models

import "time"

// Location is a physical venue housing one or more screens.
type Location struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Address     string    `bson:"address" json:"address"`
	City        string    `bson:"city" json:"city"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"` // supplied by the external blob service
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Screen is a bookable unit at a location.
type Screen struct {
	ID         string    `bson:"id" json:"id"`
	LocationID string    `bson:"locationId" json:"locationId"`
	Name       string    `bson:"name" json:"name"`
	Capacity   int       `bson:"capacity" json:"capacity"`
	Amenities  []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
	ImageURL   string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	BasePrice  float64   `bson:"basePrice" json:"basePrice"` // per-slot hire price
	Active     bool      `bson:"active" json:"active"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// LocationWithScreens is the public browse projection.
type LocationWithScreens struct {
	Location Location `json:"location"`
	Screens  []Screen `json:"screens"`
}

// CreateLocationRequest defines the payload for creating a location.
type CreateLocationRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// CreateScreenRequest defines the payload for creating a screen.
type CreateScreenRequest struct {
	LocationID string   `json:"locationId" binding:"required"`
	Name       string   `json:"name" binding:"required"`
	Capacity   int      `json:"capacity" binding:"required"`
	Amenities  []string `json:"amenities,omitempty"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	BasePrice  float64  `json:"basePrice,omitempty"`
}

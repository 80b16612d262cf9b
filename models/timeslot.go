package models

// TimeSlot represents a named daily booking window offered for a screen.
type TimeSlot struct {
	ID       string `bson:"id" json:"id"`
	ScreenID string `bson:"screenId" json:"screenId"`
	Name     string `bson:"name" json:"name"`         // e.g., "Morning Show"
	Start    string `bson:"start" json:"start"`       // 24-hour "HH:MM" (e.g., "10:00")
	End      string `bson:"end" json:"end"`           // 24-hour "HH:MM" (e.g., "12:00")
	Active   bool   `bson:"active" json:"active"`
}

// CreateSlotRequest defines the payload for creating a catalog slot.
type CreateSlotRequest struct {
	ScreenID string `json:"screenId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
}

// UpdateSlotRequest defines the payload for updating a catalog slot.
// Nil fields are left untouched.
type UpdateSlotRequest struct {
	Name   *string `json:"name,omitempty"`
	Start  *string `json:"start,omitempty"`
	End    *string `json:"end,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

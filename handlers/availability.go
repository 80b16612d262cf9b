package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eraflix/services/availability"
)

// AvailabilityHandler exposes the public availability endpoint.
type AvailabilityHandler struct {
	Resolver availability.Resolver
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(resolver availability.Resolver) *AvailabilityHandler {
	return &AvailabilityHandler{Resolver: resolver}
}

// GetAvailableSlotsHandler returns the bookable slots for a screen on a date.
func (h *AvailabilityHandler) GetAvailableSlotsHandler(c *gin.Context) {
	screenID := c.Param("screenID")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}

	slots, err := h.Resolver.AvailableSlots(c.Request.Context(), screenID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	// Enrich with display durations.
	type slotView struct {
		ID            string  `json:"id"`
		ScreenID      string  `json:"screenId"`
		Name          string  `json:"name"`
		Start         string  `json:"start"`
		End           string  `json:"end"`
		DurationHours float64 `json:"durationHours"`
	}
	views := make([]slotView, 0, len(slots))
	for _, s := range slots {
		hours, err := availability.DurationHours(s.Start, s.End)
		if err != nil {
			respondError(c, err)
			return
		}
		views = append(views, slotView{
			ID:            s.ID,
			ScreenID:      s.ScreenID,
			Name:          s.Name,
			Start:         s.Start,
			End:           s.End,
			DurationHours: hours,
		})
	}

	c.JSON(http.StatusOK, gin.H{"screenId": screenID, "date": date, "slots": views})
}

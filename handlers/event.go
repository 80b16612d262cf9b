package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eraflix/models"
	"eraflix/services/event"
	"eraflix/utils"
)

// EventHandler exposes event management and the public event listing.
type EventHandler struct {
	Service event.EventService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc event.EventService) *EventHandler {
	return &EventHandler{Service: svc}
}

func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid event request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	ev, err := h.Service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": ev})
}

func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	eventID := c.Param("eventID")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing event ID in path"})
		return
	}

	var ev models.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	ev.ID = eventID

	updated, err := h.Service.UpdateEvent(c.Request.Context(), ev)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": updated})
}

func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	eventID := c.Param("eventID")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing event ID in path"})
		return
	}

	if err := h.Service.DeleteEvent(c.Request.Context(), eventID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// ListUpcomingEventsHandler is the public listing of active upcoming events.
func (h *EventHandler) ListUpcomingEventsHandler(c *gin.Context) {
	events, err := h.Service.ListUpcoming(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// ListAllEventsHandler is the admin listing including inactive and past events.
func (h *EventHandler) ListAllEventsHandler(c *gin.Context) {
	events, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

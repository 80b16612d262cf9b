package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eraflix/models"
	"eraflix/services/venue"
	"eraflix/utils"
)

// VenueHandler exposes location and screen management plus the public browse view.
type VenueHandler struct {
	Service venue.VenueService
}

// NewVenueHandler constructs a VenueHandler.
func NewVenueHandler(svc venue.VenueService) *VenueHandler {
	return &VenueHandler{Service: svc}
}

func (h *VenueHandler) CreateLocationHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid location request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	loc, err := h.Service.CreateLocation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"location": loc})
}

func (h *VenueHandler) UpdateLocationHandler(c *gin.Context) {
	locationID := c.Param("locationID")
	if locationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing location ID in path"})
		return
	}

	var loc models.Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	loc.ID = locationID

	updated, err := h.Service.UpdateLocation(c.Request.Context(), loc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": updated})
}

func (h *VenueHandler) DeleteLocationHandler(c *gin.Context) {
	locationID := c.Param("locationID")
	if locationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing location ID in path"})
		return
	}

	if err := h.Service.DeleteLocation(c.Request.Context(), locationID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Location deleted"})
}

func (h *VenueHandler) ListLocationsHandler(c *gin.Context) {
	locs, err := h.Service.ListLocations(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locs})
}

func (h *VenueHandler) CreateScreenHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateScreenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid screen request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	screen, err := h.Service.CreateScreen(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"screen": screen})
}

func (h *VenueHandler) UpdateScreenHandler(c *gin.Context) {
	screenID := c.Param("screenID")
	if screenID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing screen ID in path"})
		return
	}

	var screen models.Screen
	if err := c.ShouldBindJSON(&screen); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	screen.ID = screenID

	updated, err := h.Service.UpdateScreen(c.Request.Context(), screen)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"screen": updated})
}

func (h *VenueHandler) DeleteScreenHandler(c *gin.Context) {
	screenID := c.Param("screenID")
	if screenID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing screen ID in path"})
		return
	}

	if err := h.Service.DeleteScreen(c.Request.Context(), screenID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Screen deleted"})
}

func (h *VenueHandler) GetScreenHandler(c *gin.Context) {
	screenID := c.Param("screenID")
	if screenID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing screen ID in path"})
		return
	}

	screen, err := h.Service.GetScreen(c.Request.Context(), screenID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"screen": screen})
}

// BrowseHandler is the public directory: active locations with active screens.
func (h *VenueHandler) BrowseHandler(c *gin.Context) {
	venues, err := h.Service.Browse(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

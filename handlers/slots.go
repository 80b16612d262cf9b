package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eraflix/models"
	"eraflix/services/catalog"
	"eraflix/utils"
)

// CatalogHandler exposes the admin slot-catalog endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

func (h *CatalogHandler) CreateSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid slot creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	slot, err := h.Service.CreateSlot(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"slot": slot})
}

func (h *CatalogHandler) UpdateSlotHandler(c *gin.Context) {
	slotID := c.Param("slotID")
	if slotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slot ID in path"})
		return
	}

	var req models.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	slot, err := h.Service.UpdateSlot(c.Request.Context(), slotID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot})
}

func (h *CatalogHandler) DeleteSlotHandler(c *gin.Context) {
	slotID := c.Param("slotID")
	if slotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slot ID in path"})
		return
	}

	if err := h.Service.DeleteSlot(c.Request.Context(), slotID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted"})
}

func (h *CatalogHandler) ListSlotsHandler(c *gin.Context) {
	screenID := c.Query("screenId")

	slots, err := h.Service.ListSlots(c.Request.Context(), screenID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

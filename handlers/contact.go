package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eraflix/models"
	"eraflix/services/contact"
	"eraflix/utils"
)

// ContactHandler exposes public enquiry submission and the admin inbox.
type ContactHandler struct {
	Service contact.ContactService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

func (h *ContactHandler) SubmitContactHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid contact request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	record, err := h.Service.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"contact": record})
}

func (h *ContactHandler) ListContactsHandler(c *gin.Context) {
	status := c.Query("status")

	records, err := h.Service.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": records})
}

func (h *ContactHandler) MarkContactHandledHandler(c *gin.Context) {
	contactID := c.Param("contactID")
	if contactID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing contact ID in path"})
		return
	}

	record, err := h.Service.MarkHandled(c.Request.Context(), contactID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": record})
}

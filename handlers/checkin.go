package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hemisphere-backend/checkin"
	"hemisphere-backend/models"
	"hemisphere-backend/store"
)

type CheckinHandler struct {
	service *checkin.Service
}

func NewCheckinHandler(service *checkin.Service) *CheckinHandler {
	return &CheckinHandler{service: service}
}

// Scan handles a scanned QR payload or manually typed lookup. Resolution and
// the audit-log append both happen server-side.
func (h *CheckinHandler) Scan(c *gin.Context) {
	var req models.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Scan(req.Payload, req.Method)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attendee not found"})
			return
		}
		log.Printf("Scan failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process scan"})
		return
	}

	log.Printf("Scanned attendee %s (already checked in: %t)", result.Attendee.ID, result.AlreadyCheckedIn)

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"attendee":         result.Attendee,
		"alreadyCheckedIn": result.AlreadyCheckedIn,
	})
}

// CheckIn is the operator set/undo endpoint. It mutates only the attendee;
// audit rows for operator flows are posted by the client to /scanlog.
func (h *CheckinHandler) CheckIn(c *gin.Context) {
	var req models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attendee, err := h.service.SetCheckedIn(req.ID, req.CheckedIn)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attendee not found"})
			return
		}
		log.Printf("Failed to update check-in status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update check-in status"})
		return
	}

	log.Printf("Set checkedIn=%t for attendee %s", req.CheckedIn, req.ID)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"attendee": attendee,
	})
}

package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hemisphere-backend/checkin"
	"hemisphere-backend/models"
	"hemisphere-backend/store"
)

type AttendeeHandler struct {
	attendees *store.Attendees
}

func NewAttendeeHandler(attendees *store.Attendees) *AttendeeHandler {
	return &AttendeeHandler{attendees: attendees}
}

func (h *AttendeeHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	attendee := models.Attendee{
		ID:        newAttendeeID(now),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Company:   req.Company,
		EventID:   req.EventID,
		CreatedAt: now,
	}

	if err := h.attendees.Create(attendee); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		log.Printf("Failed to save attendee: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save attendee"})
		return
	}

	log.Printf("Registered attendee %s (%s)", attendee.ID, attendee.Email)

	c.JSON(http.StatusCreated, gin.H{
		"attendee": attendee,
		"qrValue":  checkin.QRPrefix + attendee.ID,
	})
}

func (h *AttendeeHandler) List(c *gin.Context) {
	attendees, err := h.attendees.List()
	if err != nil {
		log.Printf("Failed to load attendees: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendees"})
		return
	}
	if attendees == nil {
		attendees = []models.Attendee{}
	}
	c.JSON(http.StatusOK, attendees)
}

func (h *AttendeeHandler) Get(c *gin.Context) {
	attendee, err := h.attendees.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attendee not found"})
			return
		}
		log.Printf("Failed to load attendee: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendee"})
		return
	}
	c.JSON(http.StatusOK, attendee)
}

// Update patches attendee fields. Email is not re-validated for uniqueness
// here; that check happens only at registration.
func (h *AttendeeHandler) Update(c *gin.Context) {
	var req models.UpdateAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attendee, err := h.attendees.Update(c.Param("id"), func(a *models.Attendee) {
		if req.FirstName != "" {
			a.FirstName = req.FirstName
		}
		if req.LastName != "" {
			a.LastName = req.LastName
		}
		if req.Email != "" {
			a.Email = strings.TrimSpace(req.Email)
		}
		if req.Company != "" {
			a.Company = req.Company
		}
		if req.EventID != "" {
			a.EventID = req.EventID
		}
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attendee not found"})
			return
		}
		log.Printf("Failed to update attendee: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attendee"})
		return
	}
	c.JSON(http.StatusOK, attendee)
}

// newAttendeeID derives a badge identifier from the registration time, with
// a short random suffix so same-millisecond registrations stay distinct.
func newAttendeeID(t time.Time) string {
	suffix := make([]byte, 2)
	rand.Read(suffix)
	return strconv.FormatInt(t.UnixMilli(), 36) + hex.EncodeToString(suffix)
}

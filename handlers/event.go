package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hemisphere-backend/models"
	"hemisphere-backend/store"
)

type EventHandler struct {
	events *store.Events
}

func NewEventHandler(events *store.Events) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.events.List()
	if err != nil {
		log.Printf("Failed to load events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	if events == nil {
		events = []models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := models.Event{
		ID:             uuid.New().String(),
		Name:           req.Name,
		ActivationCode: req.ActivationCode,
	}

	if err := h.events.Create(event); err != nil {
		log.Printf("Failed to save event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save event"})
		return
	}

	log.Printf("Created event %s (%s)", event.ID, event.Name)
	c.JSON(http.StatusCreated, event)
}

// Activate looks up an event by its activation code, used by the exhibitor
// app to self-associate with an event.
func (h *EventHandler) Activate(c *gin.Context) {
	var req models.ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code := strings.TrimSpace(req.ActivationCode)
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Activation code is required"})
		return
	}

	event, err := h.events.FindByActivationCode(code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown activation code"})
			return
		}
		log.Printf("Failed to look up activation code: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up activation code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

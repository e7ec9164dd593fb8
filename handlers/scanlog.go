package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hemisphere-backend/models"
	"hemisphere-backend/store"
)

type ScanLogHandler struct {
	scanLog *store.ScanLog
}

func NewScanLogHandler(scanLog *store.ScanLog) *ScanLogHandler {
	return &ScanLogHandler{scanLog: scanLog}
}

func (h *ScanLogHandler) List(c *gin.Context) {
	entries, err := h.scanLog.List()
	if err != nil {
		log.Printf("Failed to load scan log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load scan log"})
		return
	}
	if entries == nil {
		entries = []models.ScanLogEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ScanLogHandler) Append(c *gin.Context) {
	var req models.CreateScanLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method := req.Method
	if method != models.MethodManual {
		method = models.MethodScan
	}

	entry := models.ScanLogEntry{
		ID:            uuid.New().String(),
		AttendeeID:    req.AttendeeID,
		AttendeeName:  req.AttendeeName,
		AttendeeEmail: req.AttendeeEmail,
		Method:        method,
		Timestamp:     time.Now(),
	}

	if err := h.scanLog.Append(entry); err != nil {
		log.Printf("Failed to append scan log entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to append scan log entry"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ExportCSV writes the scan log with every field double-quote-wrapped and
// internal quotes doubled, matching the fixed export contract.
func (h *ScanLogHandler) ExportCSV(c *gin.Context) {
	entries, err := h.scanLog.List()
	if err != nil {
		log.Printf("Failed to load scan log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load scan log"})
		return
	}

	var b strings.Builder
	writeCSVRow(&b, "id", "attendeeId", "attendeeName", "attendeeEmail", "timestamp")
	for _, e := range entries {
		writeCSVRow(&b, e.ID, e.AttendeeID, e.AttendeeName, e.AttendeeEmail, e.Timestamp.Format(time.RFC3339))
	}

	c.Header("Content-Disposition", `attachment; filename="scanlog.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(b.String()))
}

func writeCSVRow(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

package models

import (
	"time"
)

// Scan methods recorded in the audit log.
const (
	MethodScan   = "scan"
	MethodManual = "manual"
)

// ScanLogEntry is one row of the append-only check-in audit trail. Repeat
// scans of an already-checked-in attendee still produce a row.
type ScanLogEntry struct {
	ID            string    `json:"id"`
	AttendeeID    string    `json:"attendeeId"`
	AttendeeName  string    `json:"attendeeName"`
	AttendeeEmail string    `json:"attendeeEmail"`
	Method        string    `json:"method"`
	Timestamp     time.Time `json:"timestamp"`
}

type CreateScanLogRequest struct {
	AttendeeID    string `json:"attendeeId" binding:"required"`
	AttendeeName  string `json:"attendeeName"`
	AttendeeEmail string `json:"attendeeEmail"`
	Method        string `json:"method"`
}

type ScanRequest struct {
	Payload string `json:"payload" binding:"required"`
	Method  string `json:"method"`
}

type CheckInRequest struct {
	ID        string `json:"id" binding:"required"`
	CheckedIn bool   `json:"checkedIn"`
}

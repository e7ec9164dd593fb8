package models

import (
	"time"
)

// Lead is an exhibitor-captured attendee contact. Append-only; the same
// attendee can be captured any number of times, including by the same
// exhibitor.
type Lead struct {
	ID            string    `json:"id"`
	EventID       string    `json:"eventId"`
	AttendeeID    string    `json:"attendeeId"`
	AttendeeName  string    `json:"attendeeName"`
	AttendeeEmail string    `json:"attendeeEmail"`
	Exhibitor     string    `json:"exhibitor"`
	Notes         string    `json:"notes"`
	Timestamp     time.Time `json:"timestamp"`
}

type CreateLeadRequest struct {
	EventID       string `json:"eventId"`
	AttendeeID    string `json:"attendeeId" binding:"required"`
	AttendeeName  string `json:"attendeeName"`
	AttendeeEmail string `json:"attendeeEmail"`
	Exhibitor     string `json:"exhibitor" binding:"required"`
	Notes         string `json:"notes"`
}

// ExhibitorEntry is one row of the derived exhibitor roster: a distinct
// exhibitor name from the lead log paired with its activation code.
type ExhibitorEntry struct {
	Name           string `json:"name"`
	ActivationCode string `json:"activationCode"`
}

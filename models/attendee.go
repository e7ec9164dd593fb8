package models

import (
	"time"
)

type Attendee struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Company     string     `json:"company"`
	EventID     string     `json:"eventId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CheckedIn   bool       `json:"checkedIn"`
	CheckedInAt *time.Time `json:"checkedInAt,omitempty"`
}

// FullName is the string the manual check-in lookup matches against.
func (a Attendee) FullName() string {
	return a.FirstName + " " + a.LastName
}

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Company   string `json:"company"`
	EventID   string `json:"eventId"`
}

type UpdateAttendeeRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	EventID   string `json:"eventId"`
}

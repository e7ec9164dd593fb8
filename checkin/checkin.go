// Package checkin implements badge payload parsing, attendee resolution and
// the check-in state transition.
package checkin

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hemisphere-backend/models"
	"hemisphere-backend/store"
)

// QRPrefix is the badge QR wire contract: every printed or displayed badge
// code is the ASCII string "hemisphere:<attendeeId>".
const QRPrefix = "hemisphere:"

// Payload is the parsed form of a scanned or typed identifier.
type Payload struct {
	Value    string
	Prefixed bool
}

// ParsePayload strips the badge prefix when present; anything else passes
// through untouched (apart from trimming) for the caller to resolve.
func ParsePayload(raw string) Payload {
	raw = strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(raw, QRPrefix); ok {
		return Payload{Value: rest, Prefixed: true}
	}
	return Payload{Value: raw}
}

type Service struct {
	attendees *store.Attendees
	scanLog   *store.ScanLog
}

func NewService(attendees *store.Attendees, scanLog *store.ScanLog) *Service {
	return &Service{attendees: attendees, scanLog: scanLog}
}

type Result struct {
	Attendee         models.Attendee
	AlreadyCheckedIn bool
}

// Scan resolves an inbound payload to one attendee and applies the check-in
// transition. The first resolution sets checkedInAt; repeats leave it
// untouched. Every resolution, first or repeat, appends exactly one scan-log
// entry; failed resolutions write nothing.
func (s *Service) Scan(payload, method string) (Result, error) {
	if method != models.MethodManual {
		method = models.MethodScan
	}

	attendee, err := s.resolve(ParsePayload(payload), method)
	if err != nil {
		return Result{}, err
	}

	already := attendee.CheckedIn
	if !already {
		now := time.Now()
		attendee, err = s.attendees.Update(attendee.ID, func(a *models.Attendee) {
			a.CheckedIn = true
			a.CheckedInAt = &now
		})
		if err != nil {
			return Result{}, err
		}
	}

	entry := models.ScanLogEntry{
		ID:            uuid.New().String(),
		AttendeeID:    attendee.ID,
		AttendeeName:  attendee.FullName(),
		AttendeeEmail: attendee.Email,
		Method:        method,
		Timestamp:     time.Now(),
	}
	if err := s.scanLog.Append(entry); err != nil {
		return Result{}, err
	}

	return Result{Attendee: attendee, AlreadyCheckedIn: already}, nil
}

// SetCheckedIn is the operator set/undo transition. Undo clears checkedInAt;
// re-applying check-in to an already-checked-in attendee keeps the original
// checkedInAt. Not reachable from the scan path, and writes no audit row.
func (s *Service) SetCheckedIn(id string, checkedIn bool) (models.Attendee, error) {
	return s.attendees.Update(id, func(a *models.Attendee) {
		if !checkedIn {
			a.CheckedIn = false
			a.CheckedInAt = nil
			return
		}
		if !a.CheckedIn {
			now := time.Now()
			a.CheckedIn = true
			a.CheckedInAt = &now
		}
	})
}

// resolve maps a payload to exactly one attendee. Prefixed payloads and the
// scan path use exact id lookup; manual entry falls back to a
// case-insensitive substring match against "first last", first match in
// store order.
func (s *Service) resolve(p Payload, method string) (models.Attendee, error) {
	if p.Value == "" {
		return models.Attendee{}, fmt.Errorf("empty payload: %w", store.ErrNotFound)
	}
	if p.Prefixed || method == models.MethodScan {
		return s.attendees.Get(p.Value)
	}

	attendees, err := s.attendees.List()
	if err != nil {
		return models.Attendee{}, err
	}
	needle := strings.ToLower(p.Value)
	for _, a := range attendees {
		if strings.Contains(strings.ToLower(a.FullName()), needle) {
			return a, nil
		}
	}
	return models.Attendee{}, fmt.Errorf("no attendee matching %q: %w", p.Value, store.ErrNotFound)
}

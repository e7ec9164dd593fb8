package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"hemisphere-backend/models"
)

// Attendees is the file-backed attendee collection. The mutex serializes
// every read-modify-write cycle, so concurrent check-ins cannot overwrite
// each other's updates.
type Attendees struct {
	mu   sync.Mutex
	path string
}

func NewAttendees(dir string) *Attendees {
	return &Attendees{path: filepath.Join(dir, "attendees.json")}
}

func (s *Attendees) List() ([]models.Attendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readAll[models.Attendee](s.path)
}

func (s *Attendees) Get(id string) (models.Attendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attendees, err := readAll[models.Attendee](s.path)
	if err != nil {
		return models.Attendee{}, err
	}
	for _, a := range attendees {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Attendee{}, fmt.Errorf("attendee %s: %w", id, ErrNotFound)
}

// Create appends a new attendee. Email uniqueness is case-insensitive and
// ignores surrounding whitespace, and is enforced here only; updates do not
// re-validate.
func (s *Attendees) Create(a models.Attendee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	attendees, err := readAll[models.Attendee](s.path)
	if err != nil {
		return err
	}
	email := normalizeEmail(a.Email)
	for _, existing := range attendees {
		if normalizeEmail(existing.Email) == email {
			return ErrDuplicateEmail
		}
	}
	return writeAll(s.path, append(attendees, a))
}

// Update applies mutate to the attendee with the given id and rewrites the
// collection. The whole cycle runs under the store lock.
func (s *Attendees) Update(id string, mutate func(*models.Attendee)) (models.Attendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attendees, err := readAll[models.Attendee](s.path)
	if err != nil {
		return models.Attendee{}, err
	}
	for i := range attendees {
		if attendees[i].ID == id {
			mutate(&attendees[i])
			if err := writeAll(s.path, attendees); err != nil {
				return models.Attendee{}, err
			}
			return attendees[i], nil
		}
	}
	return models.Attendee{}, fmt.Errorf("attendee %s: %w", id, ErrNotFound)
}

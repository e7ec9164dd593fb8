package store

import (
	"path/filepath"
	"strings"
	"sync"

	"hemisphere-backend/models"
)

type Leads struct {
	mu   sync.Mutex
	path string
}

func NewLeads(dir string) *Leads {
	return &Leads{path: filepath.Join(dir, "leads.json")}
}

func (s *Leads) List() ([]models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readAll[models.Lead](s.path)
}

// Append adds one lead row. No dedup: capturing the same attendee twice
// produces two rows.
func (s *Leads) Append(l models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads, err := readAll[models.Lead](s.path)
	if err != nil {
		return err
	}
	return writeAll(s.path, append(leads, l))
}

// ByExhibitor returns the leads whose exhibitor field matches the given
// identity, case-insensitively.
func (s *Leads) ByExhibitor(exhibitor string) ([]models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads, err := readAll[models.Lead](s.path)
	if err != nil {
		return nil, err
	}
	var matched []models.Lead
	for _, l := range leads {
		if strings.EqualFold(l.Exhibitor, exhibitor) {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

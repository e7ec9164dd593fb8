package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"hemisphere-backend/models"
)

type Events struct {
	mu   sync.Mutex
	path string
}

func NewEvents(dir string) *Events {
	return &Events{path: filepath.Join(dir, "events.json")}
}

func (s *Events) List() ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readAll[models.Event](s.path)
}

func (s *Events) Create(e models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := readAll[models.Event](s.path)
	if err != nil {
		return err
	}
	return writeAll(s.path, append(events, e))
}

func (s *Events) FindByActivationCode(code string) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := readAll[models.Event](s.path)
	if err != nil {
		return models.Event{}, err
	}
	for _, e := range events {
		if e.ActivationCode == code {
			return e, nil
		}
	}
	return models.Event{}, fmt.Errorf("activation code: %w", ErrNotFound)
}

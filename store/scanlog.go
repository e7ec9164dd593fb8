package store

import (
	"path/filepath"
	"sync"

	"hemisphere-backend/models"
)

// ScanLog is the append-only check-in audit trail. Entries are never
// mutated or deleted.
type ScanLog struct {
	mu   sync.Mutex
	path string
}

func NewScanLog(dir string) *ScanLog {
	return &ScanLog{path: filepath.Join(dir, "scanlog.json")}
}

func (s *ScanLog) List() ([]models.ScanLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readAll[models.ScanLogEntry](s.path)
}

func (s *ScanLog) Append(e models.ScanLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := readAll[models.ScanLogEntry](s.path)
	if err != nil {
		return err
	}
	return writeAll(s.path, append(entries, e))
}

package store

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"hemisphere-backend/models"
)

type Tokens struct {
	mu   sync.Mutex
	path string
}

func NewTokens(dir string) *Tokens {
	return &Tokens{path: filepath.Join(dir, "tokens.json")}
}

// Issue appends a new token, pruning expired entries while it holds the
// file. Expiry is otherwise only checked at validation time; there is no
// background sweep.
func (s *Tokens) Issue(t models.ExhibitorToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := readAll[models.ExhibitorToken](s.path)
	if err != nil {
		return err
	}
	now := time.Now()
	kept := tokens[:0]
	for _, existing := range tokens {
		if existing.ExpiresAt.After(now) {
			kept = append(kept, existing)
		}
	}
	return writeAll(s.path, append(kept, t))
}

// Validate resolves a bearer token to its exhibitor email. Unknown and
// expired tokens are indistinguishable to the caller.
func (s *Tokens) Validate(token string) (models.ExhibitorToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := readAll[models.ExhibitorToken](s.path)
	if err != nil {
		return models.ExhibitorToken{}, err
	}
	for _, t := range tokens {
		if t.Token == token && t.ExpiresAt.After(time.Now()) {
			return t, nil
		}
	}
	return models.ExhibitorToken{}, fmt.Errorf("token: %w", ErrNotFound)
}

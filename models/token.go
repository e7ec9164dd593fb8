package models

import (
	"time"
)

// ExhibitorToken is a magic-link bearer token. Tokens are time-bounded but
// not single-use; expired entries are pruned lazily when a new token is
// issued.
type ExhibitorToken struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RequestLinkRequest struct {
	Email string `json:"email" binding:"required"`
}

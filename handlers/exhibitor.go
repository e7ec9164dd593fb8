package handlers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hemisphere-backend/models"
	"hemisphere-backend/store"
)

// Magic-link tokens are valid for one hour from issue.
const tokenTTL = time.Hour

type ExhibitorHandler struct {
	leads   *store.Leads
	tokens  *store.Tokens
	baseURL string
}

func NewExhibitorHandler(leads *store.Leads, tokens *store.Tokens, baseURL string) *ExhibitorHandler {
	return &ExhibitorHandler{leads: leads, tokens: tokens, baseURL: baseURL}
}

func (h *ExhibitorHandler) ListLeads(c *gin.Context) {
	leads, err := h.leads.List()
	if err != nil {
		log.Printf("Failed to load leads: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leads"})
		return
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	c.JSON(http.StatusOK, leads)
}

// CaptureLead authenticates the exhibitor session and appends one lead row.
// No dedup: capturing the same attendee twice produces two rows.
func (h *ExhibitorHandler) CaptureLead(c *gin.Context) {
	if _, ok := h.authenticate(c); !ok {
		return
	}

	var req models.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead := models.Lead{
		ID:            uuid.New().String(),
		EventID:       req.EventID,
		AttendeeID:    req.AttendeeID,
		AttendeeName:  req.AttendeeName,
		AttendeeEmail: req.AttendeeEmail,
		Exhibitor:     req.Exhibitor,
		Notes:         req.Notes,
		Timestamp:     time.Now(),
	}

	if err := h.leads.Append(lead); err != nil {
		log.Printf("Failed to save lead: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save lead"})
		return
	}

	log.Printf("Captured lead %s for exhibitor %s", lead.ID, lead.Exhibitor)
	c.JSON(http.StatusCreated, lead)
}

// RequestLink issues a magic-link token for an exhibitor email and returns
// the portal URL carrying it.
func (h *ExhibitorHandler) RequestLink(c *gin.Context) {
	var req models.RequestLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	token := models.ExhibitorToken{
		Email:     email,
		Token:     generateToken(),
		ExpiresAt: time.Now().Add(tokenTTL),
	}

	if err := h.tokens.Issue(token); err != nil {
		log.Printf("Failed to issue token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue login link"})
		return
	}

	log.Printf("Issued login link for %s", email)

	c.JSON(http.StatusOK, gin.H{
		"loginUrl":  h.baseURL + "/exhibitor?token=" + token.Token,
		"expiresAt": token.ExpiresAt,
		"email":     email,
	})
}

// PortalLeads returns the authenticated exhibitor's leads.
func (h *ExhibitorHandler) PortalLeads(c *gin.Context) {
	token, ok := h.authenticate(c)
	if !ok {
		return
	}

	leads, err := h.leads.ByExhibitor(token.Email)
	if err != nil {
		log.Printf("Failed to load leads: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leads"})
		return
	}
	if leads == nil {
		leads = []models.Lead{}
	}

	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"email": token.Email,
	})
}

// ListExhibitors derives the exhibitor roster on demand: the distinct
// exhibitor values across all leads, each with its activation code.
// Exhibitor identity is not stored anywhere else.
func (h *ExhibitorHandler) ListExhibitors(c *gin.Context) {
	leads, err := h.leads.List()
	if err != nil {
		log.Printf("Failed to load leads: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leads"})
		return
	}

	seen := make(map[string]bool)
	roster := []models.ExhibitorEntry{}
	for _, l := range leads {
		key := strings.ToLower(l.Exhibitor)
		if l.Exhibitor == "" || seen[key] {
			continue
		}
		seen[key] = true
		roster = append(roster, models.ExhibitorEntry{
			Name:           l.Exhibitor,
			ActivationCode: activationCode(l.Exhibitor),
		})
	}

	c.JSON(http.StatusOK, roster)
}

// authenticate validates the request's bearer token and writes the 401
// itself on failure. Missing, unknown and expired tokens all get the same
// response.
func (h *ExhibitorHandler) authenticate(c *gin.Context) (models.ExhibitorToken, bool) {
	raw := bearerToken(c)
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return models.ExhibitorToken{}, false
	}

	token, err := h.tokens.Validate(raw)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return models.ExhibitorToken{}, false
		}
		log.Printf("Failed to validate token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate token"})
		return models.ExhibitorToken{}, false
	}
	return token, true
}

// bearerToken pulls the token from the Authorization header, falling back to
// the token query parameter used by magic-link URLs.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return c.Query("token")
}

// activationCode derives a deterministic code for an exhibitor name: the
// uppercased alphanumeric prefix of the name (at most 6 chars) plus a short
// hash of the normalized form.
func activationCode(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	norm := b.String()
	prefix := norm
	if len(prefix) > 6 {
		prefix = prefix[:6]
	}
	sum := sha256.Sum256([]byte(norm))
	return prefix + strings.ToUpper(hex.EncodeToString(sum[:2]))
}

func generateToken() string {
	raw := make([]byte, 16)
	rand.Read(raw)
	return hex.EncodeToString(raw)
}

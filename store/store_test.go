package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hemisphere-backend/models"
)

func testAttendee(id, email string) models.Attendee {
	return models.Attendee{
		ID:        id,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		CreatedAt: time.Now(),
	}
}

func TestAttendeesMissingFileIsEmpty(t *testing.T) {
	s := NewAttendees(t.TempDir())

	attendees, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, attendees)
}

func TestAttendeesCreateAndGet(t *testing.T) {
	s := NewAttendees(t.TempDir())

	require.NoError(t, s.Create(testAttendee("a1", "ada@x.com")))
	require.NoError(t, s.Create(testAttendee("a2", "grace@x.com")))

	attendees, err := s.List()
	require.NoError(t, err)
	assert.Len(t, attendees, 2)

	got, err := s.Get("a2")
	require.NoError(t, err)
	assert.Equal(t, "grace@x.com", got.Email)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttendeesDuplicateEmail(t *testing.T) {
	s := NewAttendees(t.TempDir())

	require.NoError(t, s.Create(testAttendee("a1", "ada@x.com")))

	// Case and whitespace must not defeat the uniqueness check.
	err := s.Create(testAttendee("a2", "  Ada@X.com "))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	attendees, err := s.List()
	require.NoError(t, err)
	assert.Len(t, attendees, 1)
}

func TestAttendeesUpdate(t *testing.T) {
	s := NewAttendees(t.TempDir())
	require.NoError(t, s.Create(testAttendee("a1", "ada@x.com")))

	now := time.Now()
	updated, err := s.Update("a1", func(a *models.Attendee) {
		a.CheckedIn = true
		a.CheckedInAt = &now
	})
	require.NoError(t, err)
	assert.True(t, updated.CheckedIn)

	got, err := s.Get("a1")
	require.NoError(t, err)
	assert.True(t, got.CheckedIn)
	require.NotNil(t, got.CheckedInAt)

	_, err = s.Update("missing", func(a *models.Attendee) {})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttendeesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "attendees.json"), []byte("{not json"), 0o644))

	s := NewAttendees(dir)

	_, err := s.List()
	assert.ErrorIs(t, err, ErrCorrupt)

	err = s.Create(testAttendee("a1", "ada@x.com"))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestEventsFindByActivationCode(t *testing.T) {
	s := NewEvents(t.TempDir())
	require.NoError(t, s.Create(models.Event{ID: "e1", Name: "DevConf", ActivationCode: "DEV123"}))

	event, err := s.FindByActivationCode("DEV123")
	require.NoError(t, err)
	assert.Equal(t, "e1", event.ID)

	_, err = s.FindByActivationCode("NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeadsAppendAndByExhibitor(t *testing.T) {
	s := NewLeads(t.TempDir())

	lead := models.Lead{ID: "l1", AttendeeID: "a1", Exhibitor: "booth@acme.com", Timestamp: time.Now()}
	require.NoError(t, s.Append(lead))
	require.NoError(t, s.Append(models.Lead{ID: "l2", AttendeeID: "a2", Exhibitor: "other@corp.com", Timestamp: time.Now()}))

	// Same attendee captured twice stays two rows.
	lead.ID = "l3"
	require.NoError(t, s.Append(lead))

	all, err := s.List()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	matched, err := s.ByExhibitor("Booth@ACME.com")
	require.NoError(t, err)
	assert.Len(t, matched, 2)
}

func TestScanLogAppend(t *testing.T) {
	s := NewScanLog(t.TempDir())

	require.NoError(t, s.Append(models.ScanLogEntry{ID: "s1", AttendeeID: "a1", Method: models.MethodScan, Timestamp: time.Now()}))
	require.NoError(t, s.Append(models.ScanLogEntry{ID: "s2", AttendeeID: "a1", Method: models.MethodScan, Timestamp: time.Now()}))

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "s1", entries[0].ID)
}

func TestTokensValidate(t *testing.T) {
	s := NewTokens(t.TempDir())

	require.NoError(t, s.Issue(models.ExhibitorToken{
		Email:     "booth@acme.com",
		Token:     "tok-valid",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	token, err := s.Validate("tok-valid")
	require.NoError(t, err)
	assert.Equal(t, "booth@acme.com", token.Email)

	_, err = s.Validate("tok-unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTokensExpired(t *testing.T) {
	dir := t.TempDir()
	s := NewTokens(dir)

	expired := []models.ExhibitorToken{{
		Email:     "booth@acme.com",
		Token:     "tok-expired",
		ExpiresAt: time.Now().Add(-time.Minute),
	}}
	require.NoError(t, writeAll(filepath.Join(dir, "tokens.json"), expired))

	// Expired and unknown are the same failure.
	_, err := s.Validate("tok-expired")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTokensIssuePrunesExpired(t *testing.T) {
	dir := t.TempDir()
	s := NewTokens(dir)

	stale := []models.ExhibitorToken{{
		Email:     "old@acme.com",
		Token:     "tok-stale",
		ExpiresAt: time.Now().Add(-time.Hour),
	}}
	require.NoError(t, writeAll(filepath.Join(dir, "tokens.json"), stale))

	require.NoError(t, s.Issue(models.ExhibitorToken{
		Email:     "booth@acme.com",
		Token:     "tok-new",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	remaining, err := readAll[models.ExhibitorToken](filepath.Join(dir, "tokens.json"))
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "tok-new", remaining[0].Token)
}

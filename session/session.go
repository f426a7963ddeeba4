// Package session owns the single active dispute case and its attachments.
// Pipeline stages work on snapshots and never touch session state.
package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/linesmerrill/dispute-evidence-api/models"
)

// ErrAttachmentNotFound is returned for an attachment id the session does
// not hold
var ErrAttachmentNotFound = errors.New("attachment not found")

// Session is one merchant's working copy of a dispute case
type Session struct {
	mu            sync.Mutex
	dispute       models.DisputeCase
	attachments   []models.AttachmentItem
	verifiedToken string
}

// New starts a session for the given case. The case is copied.
func New(c models.DisputeCase) *Session {
	return &Session{dispute: c.Clone()}
}

// Case returns a copy of the current case
func (s *Session) Case() models.DisputeCase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispute.Clone()
}

// SetCase replaces the case, keeping attachments and verification
func (s *Session) SetCase(c models.DisputeCase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispute = c.Clone()
}

// AppendTimelineEvent adds an event to the end of the timeline. Blank
// events are ignored.
func (s *Session) AppendTimelineEvent(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispute.Timeline = append(s.dispute.Timeline, text)
}

// AddAttachment stores a file and returns its new item
func (s *Session) AddAttachment(filename string, content []byte, note string) models.AttachmentItem {
	item := models.AttachmentItem{
		ID:       uuid.New().String(),
		Filename: filename,
		Size:     int64(len(content)),
		Content:  append([]byte(nil), content...),
		Note:     note,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.attachments = append(s.attachments, item)
	return item.Clone()
}

// UpdateNote replaces the note on an attachment
func (s *Session) UpdateNote(id, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.attachments {
		if s.attachments[i].ID == id {
			s.attachments[i].Note = note
			return nil
		}
	}
	return ErrAttachmentNotFound
}

// RemoveAttachment drops an attachment, keeping the order of the rest
func (s *Session) RemoveAttachment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.attachments {
		if s.attachments[i].ID == id {
			s.attachments = append(s.attachments[:i:i], s.attachments[i+1:]...)
			return nil
		}
	}
	return ErrAttachmentNotFound
}

// Attachments returns copies of the attachments in insertion order
func (s *Session) Attachments() []models.AttachmentItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAttachments(s.attachments)
}

// Snapshot returns deep copies of the case and attachments taken under one
// lock
func (s *Session) Snapshot() (models.DisputeCase, []models.AttachmentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispute.Clone(), cloneAttachments(s.attachments)
}

// RememberVerification caches a token that passed human verification
func (s *Session) RememberVerification(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verifiedToken = token
}

// VerifiedToken returns the cached token, or "" when none is held
func (s *Session) VerifiedToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verifiedToken
}

// ForgetVerification discards the cached token
func (s *Session) ForgetVerification() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verifiedToken = ""
}

func cloneAttachments(in []models.AttachmentItem) []models.AttachmentItem {
	out := make([]models.AttachmentItem, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}

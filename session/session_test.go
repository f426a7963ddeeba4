package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/dispute-evidence-api/models"
)

func TestAttachmentsKeepInsertionOrder(t *testing.T) {
	s := New(models.DisputeCase{OrderID: "A-1"})
	a := s.AddAttachment("a.png", []byte("aa"), "")
	b := s.AddAttachment("b.png", []byte("bbb"), "note")
	c := s.AddAttachment("c.png", nil, "")

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, b.ID, c.ID)
	assert.Equal(t, int64(3), b.Size)

	require.NoError(t, s.RemoveAttachment(b.ID))
	got := s.Attachments()
	require.Len(t, got, 2)
	assert.Equal(t, "a.png", got[0].Filename)
	assert.Equal(t, "c.png", got[1].Filename)
}

func TestUpdateNote(t *testing.T) {
	s := New(models.DisputeCase{})
	a := s.AddAttachment("a.png", []byte("x"), "old")

	require.NoError(t, s.UpdateNote(a.ID, "new"))
	assert.Equal(t, "new", s.Attachments()[0].Note)
	assert.ErrorIs(t, s.UpdateNote("missing", "x"), ErrAttachmentNotFound)
	assert.ErrorIs(t, s.RemoveAttachment("missing"), ErrAttachmentNotFound)
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := New(models.DisputeCase{OrderID: "A-1", Timeline: []string{"first"}})
	s.AddAttachment("a.png", []byte("abc"), "")

	c, atts := s.Snapshot()
	c.Timeline[0] = "changed"
	c.OrderID = "B"
	atts[0].Content[0] = 'z'
	atts[0].Note = "changed"

	c2, atts2 := s.Snapshot()
	assert.Equal(t, "A-1", c2.OrderID)
	assert.Equal(t, []string{"first"}, c2.Timeline)
	assert.Equal(t, []byte("abc"), atts2[0].Content)
	assert.Equal(t, "", atts2[0].Note)
}

func TestNewCopiesCase(t *testing.T) {
	in := models.DisputeCase{Timeline: []string{"one"}}
	s := New(in)
	in.Timeline[0] = "mutated"
	assert.Equal(t, []string{"one"}, s.Case().Timeline)
}

func TestAppendTimelineEvent(t *testing.T) {
	s := New(models.DisputeCase{})
	s.AppendTimelineEvent("  2024-03-01 - shipped ")
	s.AppendTimelineEvent("   ")
	s.AppendTimelineEvent("")

	assert.Equal(t, []string{"2024-03-01 - shipped"}, s.Case().Timeline)
}

func TestVerificationToken(t *testing.T) {
	s := New(models.DisputeCase{})
	assert.Equal(t, "", s.VerifiedToken())

	s.RememberVerification("tok")
	assert.Equal(t, "tok", s.VerifiedToken())

	s.ForgetVerification()
	assert.Equal(t, "", s.VerifiedToken())
}

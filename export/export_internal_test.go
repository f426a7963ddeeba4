package export

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/dispute-evidence-api/document"
	"github.com/linesmerrill/dispute-evidence-api/models"
	"github.com/linesmerrill/dispute-evidence-api/packet"
	"github.com/linesmerrill/dispute-evidence-api/session"
	"github.com/linesmerrill/dispute-evidence-api/verification"
)

func TestGenerationFailureYieldsNoArtifact(t *testing.T) {
	sess := session.New(models.DisputeCase{OrderID: "A-1", Reason: models.ReasonOther})

	e := New(verification.AlwaysAllow{}, "")
	e.compose = func(models.DisputeCase, []models.AttachmentItem, []models.EvidenceItem, document.Options) (document.Result, error) {
		return document.Result{}, document.ErrGenerationFailed
	}

	art, err := e.PDF(context.Background(), sess, "")
	assert.ErrorIs(t, err, document.ErrGenerationFailed)
	assert.Equal(t, MsgPDFFailed, UserMessage(err))
	assert.Equal(t, Artifact{}, art)

	art, err = e.ZIP(context.Background(), sess, "")
	assert.Equal(t, MsgZIPFailed, UserMessage(err))
	assert.Equal(t, Artifact{}, art)
}

func TestAssemblyFailureYieldsNoArtifact(t *testing.T) {
	sess := session.New(models.DisputeCase{OrderID: "A-1", Reason: models.ReasonOther})

	e := New(verification.AlwaysAllow{}, "")
	e.assemble = func(models.DisputeCase, []models.AttachmentItem, []byte, []models.EvidenceItem, packet.Options) ([]byte, error) {
		return nil, errors.Join(packet.ErrAssemblyFailed, errors.New("disk full"))
	}

	art, err := e.ZIP(context.Background(), sess, "")
	require.ErrorIs(t, err, packet.ErrAssemblyFailed)
	assert.Equal(t, MsgZIPFailed, UserMessage(err))
	assert.NotContains(t, UserMessage(err), "disk full")
	assert.Equal(t, Artifact{}, art)
}

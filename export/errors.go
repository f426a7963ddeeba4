package export

import (
	"errors"
)

// User-facing messages, one per failure category
const (
	MsgOrderIDRequired     = "Order ID is required before exporting."
	MsgVerificationMissing = "Complete the human verification before exporting."
	MsgVerificationFailed  = "Human verification failed. Please verify again."
	MsgPDFFailed           = "Failed to generate PDF."
	MsgZIPFailed           = "Failed to generate ZIP."
)

// ValidationError means the case or request is not ready for export. The
// user fixes their input and tries again.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// VerificationError means the human-verification gate refused the export
type VerificationError struct {
	Err error
}

func (e *VerificationError) Error() string {
	if e.Err != nil {
		return "human verification failed: " + e.Err.Error()
	}
	return "human verification failed"
}

func (e *VerificationError) Unwrap() error { return e.Err }

// GenerationError means the document or archive could not be produced
type GenerationError struct {
	Format Format
	Err    error
}

func (e *GenerationError) Error() string {
	return "generate " + string(e.Format) + ": " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }

// UserMessage maps an export error to the message shown to the user.
// Internal detail never reaches it.
func UserMessage(err error) string {
	var (
		ve *ValidationError
		he *VerificationError
		ge *GenerationError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ve):
		return ve.Message
	case errors.As(err, &he):
		return MsgVerificationFailed
	case errors.As(err, &ge) && ge.Format == FormatZIP:
		return MsgZIPFailed
	case errors.As(err, &ge):
		return MsgPDFFailed
	}
	return "Export failed. Please try again."
}

package usecase

import "fmt"

// ExportErrorKind classifies export failures so callers can pick the message
// shown to the user.
type ExportErrorKind string

const (
	ErrKindNoTemplate      ExportErrorKind = "no_template"
	ErrKindUnknownTemplate ExportErrorKind = "unknown_template"
	ErrKindRender          ExportErrorKind = "render"
	ErrKindQR              ExportErrorKind = "qr"
	ErrKindDelivery        ExportErrorKind = "delivery"
)

type ExportError struct {
	Kind    ExportErrorKind
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("export %s: %s", e.Kind, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

func exportErr(kind ExportErrorKind, cause error) *ExportError {
	msg := map[ExportErrorKind]string{
		ErrKindNoTemplate:      "Please select a template before exporting",
		ErrKindUnknownTemplate: "Please select a valid template",
		ErrKindRender:          "There was an error exporting your resume. Please try again.",
		ErrKindQR:              "QR generation failed",
		ErrKindDelivery:        "The exported file could not be saved. Please try again.",
	}[kind]
	return &ExportError{Kind: kind, Message: msg, Cause: cause}
}

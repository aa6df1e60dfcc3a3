package model

import "fmt"

// ErrorKind classifies pipeline failures. Only ErrValidation and
// ErrInternal ever reach the caller; the other kinds are recovered
// inside the pipeline with documented default substitutions.
type ErrorKind string

const (
	ErrValidation            ErrorKind = "VALIDATION_ERROR"
	ErrAnalysisDegraded      ErrorKind = "ANALYSIS_DEGRADED"
	ErrCatalogUnavailable    ErrorKind = "CATALOG_UNAVAILABLE"
	ErrGenerationUnavailable ErrorKind = "GENERATION_UNAVAILABLE"
	ErrInternal              ErrorKind = "INTERNAL_FAULT"
)

// PipelineError is a structured application error carrying its taxonomy kind
type PipelineError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// NewPipelineError creates a PipelineError wrapping an optional cause
func NewPipelineError(kind ErrorKind, message string, cause error) *PipelineError {
	return &PipelineError{Kind: kind, Message: message, Cause: cause}
}

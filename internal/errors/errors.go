package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// PresetNotFound indicates no preset exists under the requested name
	PresetNotFound ErrorCode = "PRESET_NOT_FOUND"
	// PresetCorrupt indicates a stored preset could not be parsed or
	// lacks required fields
	PresetCorrupt ErrorCode = "PRESET_CORRUPT"
	// StorageUnavailable indicates the preset or history storage
	// location is not readable or writable
	StorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
	// ArtifactInvalid indicates a comparison artifact failed to parse
	ArtifactInvalid ErrorCode = "ARTIFACT_INVALID"
	// VocabInvalid indicates a vocabulary file failed to parse
	VocabInvalid ErrorCode = "VOCAB_INVALID"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Command     string `json:"command,omitempty"`
	Description string `json:"description,omitempty"`
}

// TrkError represents a trk error with code, message, and suggestions
type TrkError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// New creates a new TrkError
func New(code ErrorCode, message string, cause error) *TrkError {
	return &TrkError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: GetSuggestedFixes(code),
	}
}

// Error implements the error interface
func (e *TrkError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *TrkError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *TrkError) WithDetails(details interface{}) *TrkError {
	e.Details = details
	return e
}

// CodeOf extracts the error code from an error chain, or InternalError
// when the chain carries no TrkError.
func CodeOf(err error) ErrorCode {
	var te *TrkError
	if errors.As(err, &te) {
		return te.Code
	}
	return InternalError
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	PresetNotFound: {
		{
			Command:     "trk preset list",
			Description: "List available preset names",
		},
	},
	PresetCorrupt: {
		{
			Command:     "trk preset save <name> --rows <rows.json>",
			Description: "Re-save the preset from a current mapping session",
		},
	},
	StorageUnavailable: {
		{
			Command:     "trk preset list",
			Description: "Check the configuration directory is readable and writable",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}

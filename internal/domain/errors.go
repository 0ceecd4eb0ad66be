package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgParticipantNotFound = "participant not found"
	ErrMsgInvalidName         = "participant name must not be empty"
	ErrMsgStoreUnavailable    = "store unavailable"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrParticipantNotFound = errors.New(ErrMsgParticipantNotFound)
	ErrInvalidName         = errors.New(ErrMsgInvalidName)
	ErrStoreUnavailable    = errors.New(ErrMsgStoreUnavailable)
)

package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// Request decoding and validation messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Participant error messages
	ErrMsgParticipantNameRequired = "Participant name is required"
	ErrMsgParticipantNotFoundHTTP = "Participant not found"

	// Generic service error messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
)

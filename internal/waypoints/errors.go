package waypoints

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of error that occurred
type ErrorKind int

const (
	// KindNetwork indicates a network-level error (connection refused, timeout, etc.)
	KindNetwork ErrorKind = iota
	// KindHTTP indicates an HTTP-level error (unexpected status code)
	KindHTTP
	// KindParse indicates a parsing error (malformed JSON, invalid response)
	KindParse
	// KindValidation indicates the store rejected a name or target (invalid,
	// duplicate, too long, not found)
	KindValidation
	// KindTeleport indicates the teleport subsystem refused the request
	KindTeleport
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "Network Error"
	case KindHTTP:
		return "HTTP Error"
	case KindParse:
		return "Parse Error"
	case KindValidation:
		return "Validation Error"
	case KindTeleport:
		return "Teleport Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error represents a failure talking to or reported by the waypoint store
type Error struct {
	Kind       ErrorKind // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a network-level error
func NewNetworkError(message string, err error) *Error {
	return &Error{Kind: KindNetwork, Message: message, Err: err}
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, message string) *Error {
	return &Error{Kind: KindHTTP, Message: message, StatusCode: statusCode}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *Error {
	return &Error{Kind: KindParse, Message: message, Err: err}
}

// NewValidationError creates a validation error. The message is what the menu
// shows the viewer inline, so it should be self-contained.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewTeleportError creates a teleport refusal error
func NewTeleportError(message string) *Error {
	return &Error{Kind: KindTeleport, Message: message}
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return isKind(err, KindValidation)
}

// IsTeleport checks if an error is a teleport refusal
func IsTeleport(err error) bool {
	return isKind(err, KindTeleport)
}

// IsNetwork checks if an error is a network error
func IsNetwork(err error) bool {
	return isKind(err, KindNetwork)
}

func isKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// UserMessage returns a concise message suitable for inline display in the
// menu. Validation errors carry server wording verbatim; everything else is
// summarised.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	switch e.Kind {
	case KindValidation:
		return e.Message
	case KindTeleport:
		return "Teleport refused"
	case KindNetwork:
		return "Cannot reach the waypoint server"
	case KindHTTP:
		return fmt.Sprintf("Server error (HTTP %d)", e.StatusCode)
	case KindParse:
		return "Unexpected response from the server"
	default:
		return e.Message
	}
}

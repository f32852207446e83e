package conversation

import "errors"

// ValidationError reports user input that cannot be applied in the current
// step: wrong event for the state, malformed payload, or an out-of-set
// selection. The session is left unchanged and the user is re-prompted.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// InvariantViolationError reports a programming-contract breach, such as
// building an appointment outside the final card step. It is never recovered
// locally.
type InvariantViolationError struct {
	Reason string
}

func (e InvariantViolationError) Error() string {
	return "invariant violated: " + e.Reason
}

// ErrSessionNotFound is returned when a session ID resolves to nothing,
// typically because the session expired or was cancelled.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

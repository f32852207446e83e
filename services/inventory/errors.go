package inventory

import "errors"

var (
	// ErrUnavailable signals that every unit of the requested bed type is
	// already reserved. Recoverable: the caller re-prompts.
	ErrUnavailable = errors.New("no free unit of the requested bed type")

	// ErrUnknownStock signals a (hospital, bed type) pair that was never
	// configured at startup.
	ErrUnknownStock = errors.New("no stock configured for hospital and bed type")
)

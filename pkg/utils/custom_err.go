package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidCoordinates    = errors.New("coordinates out of range")
	ErrResolverUnavailable   = errors.New("place search unavailable")
	ErrDirectionsUnavailable = errors.New("directions unavailable")
)

// DirectionsError wraps ErrDirectionsUnavailable with the provider's raw
// status so it survives into server logs. The status is never echoed to
// the caller.
func DirectionsError(status string) error {
	return fmt.Errorf("%w: provider status %q", ErrDirectionsUnavailable, status)
}

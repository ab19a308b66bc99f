package keyring

import (
	"errors"
	"fmt"
)

// Repository error types.
var (
	// ErrEmptyPrefix is returned when the configured path prefix is empty
	// after trimming separators and whitespace.
	ErrEmptyPrefix = errors.New("parameter path prefix is empty")

	// ErrDeleteUnsupported is returned by DeleteAll when the injected client
	// does not implement the Deleter capability.
	ErrDeleteUnsupported = errors.New("remote store does not support deletion")
)

// ParameterTooLargeError is returned before any network call when a value
// cannot fit the tier ceiling the active policy allows.
type ParameterTooLargeError struct {
	Length int      // serialized value length in bytes
	Limit  int      // the ceiling that was exceeded
	Mode   TierMode // active tier mode when the check failed
}

func (e *ParameterTooLargeError) Error() string {
	if e.Limit == StandardMaxSize {
		return fmt.Sprintf("parameter value is %d bytes, over the %d byte Standard tier limit; set tier mode %q or %q to store larger values",
			e.Length, e.Limit, ModeAdvancedUpgradeable, ModeIntelligentTiering)
	}
	return fmt.Sprintf("parameter value is %d bytes, over the %d byte Advanced tier limit", e.Length, e.Limit)
}

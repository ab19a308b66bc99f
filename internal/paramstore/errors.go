package paramstore

import "errors"

// Store error types.
var (
	ErrNotFound      = errors.New("parameter not found")
	ErrInvalidName   = errors.New("parameter name must be a '/'-rooted path")
	ErrInvalidTier   = errors.New("unknown storage tier")
	ErrInvalidType   = errors.New("unsupported parameter type")
	ErrValueTooLarge = errors.New("value exceeds tier size limit")
)

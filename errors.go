package weights

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by operations that need storage on an empty table.
	ErrEmpty = errors.New("weights: table has no storage")
	// ErrAlreadyShared is returned when Share is called a second time.
	ErrAlreadyShared = errors.New("weights: table is already in shared memory")
	// ErrAllocationFailed is returned when slot storage cannot be obtained.
	ErrAllocationFailed = errors.New("weights: allocation failed")
	// ErrShareFailed is returned when the shared mapping cannot be created.
	// The table is unchanged, but callers that depend on peers seeing the
	// table should treat this as fatal.
	ErrShareFailed = errors.New("weights: promotion to shared memory failed")
	// ErrSharedUnsupported is returned by Share on platforms without fork.
	ErrSharedUnsupported = errors.New("weights: shared memory is not supported on this platform")
)

// ErrInvalidConfiguration indicates a sizing or offset argument that would
// break masked addressing.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidConfiguration struct {
	Field  string
	Value  uint64
	Reason string
	cause  error
}

func (e *ErrInvalidConfiguration) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

func (e *ErrInvalidConfiguration) Unwrap() error { return e.cause }

func invalidConfig(field string, value uint64, reason string, cause error) error {
	return &ErrInvalidConfiguration{Field: field, Value: value, Reason: reason, cause: cause}
}

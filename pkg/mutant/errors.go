package mutant

import "errors"

// Sentinel errors for mutant failure modes.
// Callers should use errors.Is() to check for these.
var (
	// ErrImmutableTarget indicates a caller tried to overwrite the target
	// URI of a mutant whose injection point lives in that URI. Such targets
	// only change through SetValue.
	ErrImmutableTarget = errors.New("mutant: target URI cannot be changed directly")

	// ErrDuplicateFactory indicates a factory for the same kind was
	// already registered.
	ErrDuplicateFactory = errors.New("mutant: factory already registered")
)

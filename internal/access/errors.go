package access

import (
	"errors"
	"fmt"
)

// Resolution and filter failures are expected business outcomes and are
// reported as sentinel errors the caller can map to user-facing messages.
// Store failures are wrapped with ErrStoreUnavailable so they stay
// distinguishable from "no match".
var (
	ErrMissingPIN           = errors.New("pin is missing")
	ErrInvalidPIN           = errors.New("pin does not match any credential")
	ErrIncompleteCredential = errors.New("credential has no name or role")

	ErrUnknownRole        = errors.New("unknown role")
	ErrMissingScopeOrName = errors.New("stadt or name required")
	ErrMissingName        = errors.New("name required")

	ErrStoreUnavailable = errors.New("store unavailable")
)

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

package timelock

import (
	"github.com/carbonvault/vault/errors"
)

var (
	// ErrNotInitialized is returned when the escrow configuration is
	// missing.
	ErrNotInitialized = errors.Register(130, "not initialized")

	// ErrAlreadyInitialized is returned when the escrow configuration
	// already exists and must not be written again.
	ErrAlreadyInitialized = errors.Register(131, "already initialized")

	// ErrAlreadyLocked is returned when a lock exists for the token.
	ErrAlreadyLocked = errors.Register(132, "already locked")

	// ErrNotLocked is returned when no lock exists for the token.
	ErrNotLocked = errors.Register(133, "not locked")

	// ErrVintageCheckMissing is returned when vintage validation is
	// enabled but no vintage policy is configured.
	ErrVintageCheckMissing = errors.Register(134, "vintage check missing")

	// ErrVintageMismatch is returned when the requested unlock time is
	// earlier than the minimum mandated by the vintage policy.
	ErrVintageMismatch = errors.Register(135, "vintage mismatch")
)

package sigs

import (
	"github.com/carbonvault/vault/errors"
)

var (
	// ErrInvalidSequence is returned when the sequence number of a
	// signature does not match the expected next value for the account.
	ErrInvalidSequence = errors.Register(120, "invalid sequence")
)

package timelock

import (
	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
)

const (
	pathLockMsg         = "timelock/lock"
	pathReleaseMsg      = "timelock/release"
	pathBatchReleaseMsg = "timelock/batchRelease"
	pathForceReleaseMsg = "timelock/forceRelease"
)

// batchMaxSize bounds the number of releases a single transaction can
// carry.
const batchMaxSize = 100

var _ vault.Msg = (*LockMsg)(nil)
var _ vault.Msg = (*ReleaseMsg)(nil)
var _ vault.Msg = (*BatchReleaseMsg)(nil)
var _ vault.Msg = (*ForceReleaseMsg)(nil)

func (LockMsg) Path() string {
	return pathLockMsg
}

func (m *LockMsg) Validate() error {
	var errs error
	if m.TokenId == 0 {
		errs = errors.AppendField(errs, "TokenId", errors.Wrap(errors.ErrEmpty, "required"))
	}
	errs = errors.AppendField(errs, "UnlockTimestamp", m.UnlockTimestamp.Validate())
	return errs
}

func (ReleaseMsg) Path() string {
	return pathReleaseMsg
}

func (m *ReleaseMsg) Validate() error {
	if m.TokenId == 0 {
		return errors.Field("TokenId", errors.ErrEmpty, "required")
	}
	return nil
}

func (BatchReleaseMsg) Path() string {
	return pathBatchReleaseMsg
}

func (m *BatchReleaseMsg) Validate() error {
	if len(m.TokenIds) == 0 {
		return errors.Field("TokenIds", errors.ErrEmpty, "required")
	}
	if len(m.TokenIds) > batchMaxSize {
		return errors.Field("TokenIds", errors.ErrMsg, "at most %d tokens per batch", batchMaxSize)
	}
	for _, id := range m.TokenIds {
		if id == 0 {
			return errors.Field("TokenIds", errors.ErrEmpty, "token id required")
		}
	}
	return nil
}

func (ForceReleaseMsg) Path() string {
	return pathForceReleaseMsg
}

func (m *ForceReleaseMsg) Validate() error {
	if m.TokenId == 0 {
		return errors.Field("TokenId", errors.ErrEmpty, "required")
	}
	return nil
}

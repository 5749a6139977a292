package timelock

import (
	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
)

// TokenMover is the custody interface of the asset registry. Any failure is
// propagated verbatim and aborts the whole operation.
type TokenMover interface {
	// TokenOwner returns the current holder of the token.
	TokenOwner(db vault.ReadOnlyKVStore, tokenID uint64) (vault.Address, error)

	// MoveToken transfers the token from src to dest. It must fail if src
	// does not currently hold the token.
	MoveToken(db vault.KVStore, src, dest vault.Address, tokenID uint64) error
}

// VintagePolicy reports the minimum permitted unlock time per token. It is
// consulted only when vintage validation is enabled.
type VintagePolicy interface {
	MinUnlockTime(db vault.ReadOnlyKVStore, tokenID uint64) (vault.UnixTime, error)
}

// Controller implements the custody escrow logic on top of an injected
// asset registry.
type Controller struct {
	mover  TokenMover
	bucket LockBucket
}

func NewController(mover TokenMover) Controller {
	return Controller{
		mover:  mover,
		bucket: NewBucket(),
	}
}

// Lock takes the token from its owner into custody until the unlock time.
// It fails with ErrAlreadyLocked if a lock record for the token exists.
func (c Controller) Lock(db vault.KVStore, tokenID uint64, owner vault.Address, unlock, now vault.UnixTime) error {
	switch rec, err := c.bucket.Get(db, tokenID); {
	case err != nil:
		return errors.Wrap(err, "check lock")
	case rec != nil:
		return errors.Wrapf(ErrAlreadyLocked, "token %d", tokenID)
	}
	if err := c.mover.MoveToken(db, owner, CustodyCondition(tokenID).Address(), tokenID); err != nil {
		return errors.Wrap(err, "deposit custody")
	}
	rec := &LockRecord{
		TokenId:         tokenID,
		Owner:           owner,
		UnlockTimestamp: unlock,
		DepositedAt:     now,
	}
	return c.bucket.Save(db, rec)
}

// Release returns the token to its recorded owner if the unlock time was
// reached. A missing record and a not yet eligible lock are not errors but
// report false.
func (c Controller) Release(db vault.KVStore, tokenID uint64, now vault.UnixTime) (bool, error) {
	rec, err := c.bucket.Get(db, tokenID)
	if err != nil {
		return false, errors.Wrap(err, "check lock")
	}
	if rec == nil || !rec.Eligible(now) {
		return false, nil
	}
	if err := c.releaseCustody(db, rec); err != nil {
		return false, err
	}
	return true, nil
}

// ForceRelease returns the token to its recorded owner ignoring the unlock
// time. It fails with ErrNotLocked if no lock record exists.
func (c Controller) ForceRelease(db vault.KVStore, tokenID uint64) error {
	rec, err := c.bucket.Get(db, tokenID)
	if err != nil {
		return errors.Wrap(err, "check lock")
	}
	if rec == nil {
		return errors.Wrapf(ErrNotLocked, "token %d", tokenID)
	}
	return c.releaseCustody(db, rec)
}

func (c Controller) releaseCustody(db vault.KVStore, rec *LockRecord) error {
	custody := CustodyCondition(rec.TokenId).Address()
	if err := c.mover.MoveToken(db, custody, rec.Owner, rec.TokenId); err != nil {
		return errors.Wrap(err, "return custody")
	}
	return c.bucket.Delete(db, rec.TokenId)
}

// LockStatus returns the lock record of the token or nil if the token is
// not locked.
func (c Controller) LockStatus(db vault.ReadOnlyKVStore, tokenID uint64) (*LockRecord, error) {
	return c.bucket.Get(db, tokenID)
}

// TokensLockedUntil returns the ids of all tokens whose unlock time is
// strictly greater than the given timestamp. This is a linear scan over all
// active locks.
func (c Controller) TokensLockedUntil(db vault.ReadOnlyKVStore, ts vault.UnixTime) ([]uint64, error) {
	models, err := c.bucket.Query(db, vault.PrefixQueryMod, nil)
	if err != nil {
		return nil, errors.Wrap(err, "scan locks")
	}
	var ids []uint64
	for _, m := range models {
		var rec LockRecord
		if err := rec.Unmarshal(m.Value); err != nil {
			return nil, errors.Wrap(err, "parse lock record")
		}
		if rec.UnlockTimestamp > ts {
			ids = append(ids, rec.TokenId)
		}
	}
	return ids, nil
}

// Admin returns the configured admin address. ErrNotInitialized is returned
// when no configuration exists.
func Admin(db vault.ReadOnlyKVStore) (vault.Address, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	return conf.Admin, nil
}

// AssetRegistry returns the configured asset registry address.
// ErrNotInitialized is returned when no configuration exists.
func AssetRegistry(db vault.ReadOnlyKVStore) (vault.Address, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	return conf.AssetRegistry, nil
}

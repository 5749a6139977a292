package timelock

import (
	"encoding/binary"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/orm"
)

// BucketName is where all lock records are stored.
const BucketName = "locks"

var _ orm.CloneableData = (*LockRecord)(nil)

func (r *LockRecord) Validate() error {
	var errs error
	if r.TokenId == 0 {
		errs = errors.AppendField(errs, "TokenId", errors.Wrap(errors.ErrEmpty, "required"))
	}
	errs = errors.AppendField(errs, "Owner", r.Owner.Validate())
	errs = errors.AppendField(errs, "UnlockTimestamp", r.UnlockTimestamp.Validate())
	errs = errors.AppendField(errs, "DepositedAt", r.DepositedAt.Validate())
	return errs
}

func (r *LockRecord) Copy() orm.CloneableData {
	return &LockRecord{
		TokenId:         r.TokenId,
		Owner:           r.Owner.Clone(),
		UnlockTimestamp: r.UnlockTimestamp,
		DepositedAt:     r.DepositedAt,
	}
}

// Eligible returns true if the lock can be released at the given time.
func (r *LockRecord) Eligible(now vault.UnixTime) bool {
	return r.UnlockTimestamp <= now
}

func lockKey(tokenID uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, tokenID)
	return key
}

// CustodyCondition is the condition holding a token for the time of its
// lock. Every token is held under its own condition so that custody is
// never pooled.
func CustodyCondition(tokenID uint64) vault.Condition {
	return vault.NewCondition("timelock", "custody", lockKey(tokenID))
}

// LockBucket stores lock records keyed by the token id.
type LockBucket struct {
	orm.Bucket
}

func NewBucket() LockBucket {
	return LockBucket{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &LockRecord{})),
	}
}

// Get returns the lock record of the token or nil if the token is not
// locked.
func (b LockBucket) Get(db vault.ReadOnlyKVStore, tokenID uint64) (*LockRecord, error) {
	obj, err := b.Bucket.Get(db, lockKey(tokenID))
	if err != nil {
		return nil, err
	}
	if obj == nil || obj.Value() == nil {
		return nil, nil
	}
	rec, ok := obj.Value().(*LockRecord)
	if !ok {
		return nil, errors.Wrapf(errors.ErrModel, "invalid type: %T", obj.Value())
	}
	return rec, nil
}

// Save persists the lock record under its token id.
func (b LockBucket) Save(db vault.KVStore, rec *LockRecord) error {
	if err := rec.Validate(); err != nil {
		return errors.Wrap(err, "invalid lock record")
	}
	obj := orm.NewSimpleObj(lockKey(rec.TokenId), rec)
	return b.Bucket.Save(db, obj)
}

// Delete removes the lock record of the token.
func (b LockBucket) Delete(db vault.KVStore, tokenID uint64) error {
	return b.Bucket.Delete(db, lockKey(tokenID))
}

package timelock

import (
	"encoding/binary"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
)

// lockedUntilHandler answers "/locks/until" queries. The query data is an
// 8 byte big endian unix timestamp and the result contains every lock record
// with an unlock time strictly greater than it. The scan is linear in the
// number of active locks.
type lockedUntilHandler struct {
	bucket LockBucket
}

var _ vault.QueryHandler = lockedUntilHandler{}

func (h lockedUntilHandler) Query(db vault.ReadOnlyKVStore, mod string, data []byte) ([]vault.Model, error) {
	if mod != vault.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unsupported query mod %q", mod)
	}
	if len(data) != 8 {
		return nil, errors.Wrap(errors.ErrInput, "timestamp must be 8 bytes")
	}
	ts := vault.UnixTime(binary.BigEndian.Uint64(data))
	if ts < 0 {
		return nil, errors.Wrap(errors.ErrInput, "timestamp out of range")
	}

	models, err := h.bucket.Query(db, vault.PrefixQueryMod, nil)
	if err != nil {
		return nil, errors.Wrap(err, "scan locks")
	}
	var res []vault.Model
	for _, m := range models {
		var rec LockRecord
		if err := rec.Unmarshal(m.Value); err != nil {
			return nil, errors.Wrap(err, "parse lock record")
		}
		if rec.UnlockTimestamp > ts {
			res = append(res, m)
		}
	}
	return res, nil
}

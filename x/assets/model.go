package assets

import (
	"encoding/binary"

	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/orm"
)

// BucketName is where all tokens are stored.
const BucketName = "tokens"

var _ orm.CloneableData = (*Token)(nil)

func (t *Token) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", t.Owner.Validate())
	errs = errors.AppendField(errs, "VintageUnlock", t.VintageUnlock.Validate())
	return errs
}

func (t *Token) Copy() orm.CloneableData {
	return &Token{
		Owner:         t.Owner.Clone(),
		VintageUnlock: t.VintageUnlock,
	}
}

// TokenKey returns the bucket key of the token with the given id. Token ids
// are stored as 8 byte big endian sequences so that an iteration over the
// bucket lists them in numeric order.
func TokenKey(tokenID uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, tokenID)
	return key
}

// NewBucket returns a bucket for keeping track of tokens.
func NewBucket() orm.ModelBucket {
	b := orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &Token{}))
	return orm.NewModelBucket(b)
}

// RegisterQuery registers the token bucket for queries.
func RegisterQuery(qr vault.QueryRouter) {
	NewBucket().Register("tokens", qr)
}

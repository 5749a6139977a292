package assets

import (
	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/orm"
)

// Controller provides direct access to the token registry for other
// extensions. Handlers of this package are built on top of it as well.
type Controller struct {
	bucket orm.ModelBucket
}

func NewController() Controller {
	return Controller{bucket: NewBucket()}
}

// TokenOwner returns the current owner of the token. ErrNotFound is returned
// if no token with the given id is registered.
func (c Controller) TokenOwner(db vault.ReadOnlyKVStore, tokenID uint64) (vault.Address, error) {
	var token Token
	if err := c.bucket.One(db, TokenKey(tokenID), &token); err != nil {
		return nil, errors.Wrapf(err, "token %d", tokenID)
	}
	return token.Owner, nil
}

// MinUnlockTime returns the vintage unlock time of the token. ErrNotFound is
// returned if no token with the given id is registered.
func (c Controller) MinUnlockTime(db vault.ReadOnlyKVStore, tokenID uint64) (vault.UnixTime, error) {
	var token Token
	if err := c.bucket.One(db, TokenKey(tokenID), &token); err != nil {
		return 0, errors.Wrapf(err, "token %d", tokenID)
	}
	return token.VintageUnlock, nil
}

// MoveToken transfers the token from src to dest. It fails with
// ErrUnauthorized unless src is the current holder of the token.
func (c Controller) MoveToken(db vault.KVStore, src, dest vault.Address, tokenID uint64) error {
	var token Token
	if err := c.bucket.One(db, TokenKey(tokenID), &token); err != nil {
		return errors.Wrapf(err, "token %d", tokenID)
	}
	if !token.Owner.Equals(src) {
		return errors.Wrapf(errors.ErrUnauthorized, "token %d is not held by %s", tokenID, src)
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	token.Owner = dest
	if err := c.bucket.Put(db, TokenKey(tokenID), &token); err != nil {
		return errors.Wrap(err, "save token")
	}
	return nil
}

// Issue registers a new token. It fails with ErrDuplicate if a token with the
// given id already exists.
func (c Controller) Issue(db vault.KVStore, tokenID uint64, owner vault.Address, vintageUnlock vault.UnixTime) error {
	switch err := c.bucket.Has(db, TokenKey(tokenID)); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "token %d", tokenID)
	case errors.ErrNotFound.Is(err):
		// Token does not exist and can be created.
	default:
		return errors.Wrap(err, "check token")
	}
	token := Token{Owner: owner, VintageUnlock: vintageUnlock}
	if err := c.bucket.Put(db, TokenKey(tokenID), &token); err != nil {
		return errors.Wrap(err, "save token")
	}
	return nil
}

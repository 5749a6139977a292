package assets

import (
	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file.
type Initializer struct{}

var _ vault.Initializer = (*Initializer)(nil)

// FromGenesis will parse the initial token registry state from genesis and
// save it to the database.
func (*Initializer) FromGenesis(opts vault.Options, kv vault.KVStore) error {
	if err := gconf.InitConfig(kv, opts, "assets", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	type token struct {
		TokenId       uint64         `json:"token_id"`
		Owner         vault.Address  `json:"owner"`
		VintageUnlock vault.UnixTime `json:"vintage_unlock"`
	}
	var tokens []token
	if err := opts.ReadOptions("tokens", &tokens); err != nil {
		return errors.Wrap(err, "cannot load tokens")
	}

	ctrl := NewController()
	for i, t := range tokens {
		if err := ctrl.Issue(kv, t.TokenId, t.Owner, t.VintageUnlock); err != nil {
			return errors.Wrapf(err, "cannot store token #%d", i)
		}
	}
	return nil
}

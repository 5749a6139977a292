package timelock

import (
	vault "github.com/carbonvault/vault"
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ vault.Initializer = (*Initializer)(nil)

// FromGenesis writes the escrow configuration. The configuration is a
// singleton that can be written exactly once. It is validated before being
// stored, which rejects a setup that enables vintage validation without a
// policy address.
func (*Initializer) FromGenesis(opts vault.Options, kv vault.KVStore) error {
	switch err := gconf.Load(kv, "timelock", &Configuration{}); {
	case err == nil:
		return errors.Wrap(ErrAlreadyInitialized, "configuration exists")
	case errors.ErrNotFound.Is(err):
		// First write.
	default:
		return errors.Wrap(err, "load configuration")
	}
	if err := gconf.InitConfig(kv, opts, "timelock", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}
	return nil
}

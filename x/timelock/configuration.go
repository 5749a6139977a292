package timelock

import (
	"github.com/carbonvault/vault/errors"
	"github.com/carbonvault/vault/gconf"
)

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Admin", c.Admin.Validate())
	errs = errors.AppendField(errs, "AssetRegistry", c.AssetRegistry.Validate())
	if c.ValidateVintage {
		if len(c.VintagePolicy) == 0 {
			errs = errors.AppendField(errs, "VintagePolicy",
				errors.Wrap(errors.ErrEmpty, "required when vintage validation is enabled"))
		} else {
			errs = errors.AppendField(errs, "VintagePolicy", c.VintagePolicy.Validate())
		}
	} else if len(c.VintagePolicy) != 0 {
		errs = errors.AppendField(errs, "VintagePolicy", c.VintagePolicy.Validate())
	}
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, "timelock", &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(ErrNotInitialized, "no configuration")
	default:
		return nil, errors.Wrap(err, "load configuration")
	}
}

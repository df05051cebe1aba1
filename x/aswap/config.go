package aswap

import (
	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/gconf"
)

const (
	configPkg = "aswap"

	// DefaultMaxSecretLength is used when no configuration was stored.
	DefaultMaxSecretLength = 64

	maxSecretLengthLimit = 1024
)

// DefaultConfiguration is used when the genesis did not provide one.
func DefaultConfiguration() Configuration {
	return Configuration{MaxSecretLength: DefaultMaxSecretLength}
}

// Validate ensures the configuration is sensible.
func (c *Configuration) Validate() error {
	if c.MaxSecretLength <= 0 || c.MaxSecretLength > maxSecretLengthLimit {
		return errors.Wrapf(errors.ErrInput, "max secret length must be within 1 and %d", maxSecretLengthLimit)
	}
	if c.MaxDuration < 0 {
		return errors.Wrap(errors.ErrInput, "max duration cannot be negative")
	}
	return nil
}

// loadConf returns the stored configuration or the default one.
func loadConf(db pswap.ReadOnlyKVStore) (Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, configPkg, &conf); {
	case err == nil:
		return conf, nil
	case errors.ErrNotFound.Is(err):
		return DefaultConfiguration(), nil
	default:
		return conf, err
	}
}

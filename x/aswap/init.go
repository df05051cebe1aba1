package aswap

import (
	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/gconf"
)

// Initializer fulfils the Initializer interface to load the extension
// configuration from the genesis file.
type Initializer struct{}

var _ pswap.Initializer = Initializer{}

// FromGenesis stores the "conf.aswap" section. A missing section leaves the
// default configuration in use.
func (Initializer) FromGenesis(opts pswap.Options, db pswap.KVStore) error {
	var confOpts pswap.Options
	if err := opts.ReadOptions("conf", &confOpts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if confOpts[configPkg] == nil {
		return nil
	}
	var conf Configuration
	return gconf.InitConfig(db, opts, configPkg, &conf)
}

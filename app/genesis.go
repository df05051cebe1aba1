package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
)

// Genesis file format.
type Genesis struct {
	ChainID  string        `json:"chain_id"`
	AppState pswap.Options `json:"app_state"`
}

// LoadGenesis tries to load a given file into a Genesis struct.
func LoadGenesis(filePath string) (Genesis, error) {
	var gen Genesis

	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "loading genesis file: %s", err)
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "unmarshaling genesis file: %s", err)
	}
	if !IsValidChainID(gen.ChainID) {
		return gen, errors.Wrapf(errors.ErrInput, "invalid chain id %q", gen.ChainID)
	}
	return gen, nil
}

// ChainInitializers lets you initialize many extensions with one function.
func ChainInitializers(inits ...pswap.Initializer) pswap.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []pswap.Initializer
}

// FromGenesis passes the options to every initializer in order and stops on
// the first failure.
func (c chainInitializer) FromGenesis(opts pswap.Options, kv pswap.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}

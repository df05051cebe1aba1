package token

import (
	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
)

const optKey = "token"

// GenesisAccount is used to parse the json from genesis file.
// Address uses pswap.Address, so hex or bech32, not base64.
type GenesisAccount struct {
	Address  pswap.Address    `json:"address"`
	Balances []GenesisBalance `json:"balances"`
}

// GenesisBalance is an initial amount of a single token.
type GenesisBalance struct {
	Token  string `json:"token"`
	Amount uint64 `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ pswap.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts pswap.Options, db pswap.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	control := NewController()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		for _, b := range acct.Balances {
			if err := control.Issue(db, b.Token, acct.Address, b.Amount); err != nil {
				return errors.Wrapf(err, "account %d", i)
			}
		}
	}
	return nil
}

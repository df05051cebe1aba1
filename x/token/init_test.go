package token

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/store"
	"github.com/iov-one/pswap/weavetest"
	"github.com/iov-one/pswap/weavetest/assert"
)

func TestGenesis(t *testing.T) {
	alice := weavetest.NewCondition().Address()

	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		wantTA  uint64
	}{
		"no section": {
			genesis: `{}`,
		},
		"balances": {
			genesis: fmt.Sprintf(`{"token": [{"address": %q, "balances": [{"token": "TA", "amount": 100}, {"token": "TA", "amount": 5}]}]}`, alice.String()),
			wantTA:  105,
		},
		"invalid ticker": {
			genesis: fmt.Sprintf(`{"token": [{"address": %q, "balances": [{"token": "t", "amount": 1}]}]}`, alice.String()),
			wantErr: errors.ErrInput,
		},
		"missing address": {
			genesis: `{"token": [{"balances": [{"token": "TA", "amount": 1}]}]}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts pswap.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))
			db := store.MemStore()
			assert.IsErr(t, tc.wantErr, Initializer{}.FromGenesis(opts, db))
			if tc.wantErr != nil {
				return
			}
			got, err := NewController().BalanceOf(db, "TA", alice)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantTA, got)
		})
	}
}

package aswap

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/store"
)

func TestGenesisConfiguration(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		want    Configuration
	}{
		"custom": {
			genesis: `{"conf": {"aswap": {"max_secret_length": 32, "max_duration": 86400}}}`,
			want:    Configuration{MaxSecretLength: 32, MaxDuration: 86400},
		},
		"missing section": {
			genesis: `{"conf": {"token": {}}}`,
			want:    DefaultConfiguration(),
		},
		"no conf at all": {
			genesis: `{}`,
			want:    DefaultConfiguration(),
		},
		"invalid": {
			genesis: `{"conf": {"aswap": {"max_secret_length": 0}}}`,
			wantErr: errors.ErrInput,
		},
		"malformed": {
			genesis: `{"conf": {"aswap": {"max_secret_length": "long"}}}`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts pswap.Options
			if err := json.Unmarshal([]byte(tc.genesis), &opts); err != nil {
				t.Fatalf("cannot unmarshal genesis: %s", err)
			}
			db := store.MemStore()
			if err := (Initializer{}).FromGenesis(opts, db); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			got, err := loadConf(db)
			if err != nil {
				t.Fatalf("cannot load configuration: %s", err)
			}
			if got != tc.want {
				t.Fatalf("want %+v, got %+v", tc.want, got)
			}
		})
	}
}

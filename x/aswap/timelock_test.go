package aswap_test

import (
	"math"
	"testing"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/weavetest/assert"
	"github.com/iov-one/pswap/x/aswap"
)

func TestComputeExpiry(t *testing.T) {
	cases := map[string]struct {
		now         pswap.UnixTime
		duration    int64
		maxDuration int64
		want        pswap.UnixTime
		wantErr     *errors.Error
	}{
		"regular": {
			now:      1000,
			duration: 3600,
			want:     4600,
		},
		"at the limit": {
			now:         1000,
			duration:    60,
			maxDuration: 60,
			want:        1060,
		},
		"above the limit": {
			now:         1000,
			duration:    61,
			maxDuration: 60,
			wantErr:     errors.ErrInput,
		},
		"largest value": {
			now:      1000,
			duration: math.MaxInt64 - 1000,
			want:     math.MaxInt64,
		},
		"wraps around": {
			now:      1000,
			duration: math.MaxInt64 - 999,
			wantErr:  errors.ErrOverflow,
		},
		"wraps below duration": {
			now:      math.MaxInt64,
			duration: math.MaxInt64,
			wantErr:  errors.ErrOverflow,
		},
		"zero": {
			now:      1000,
			duration: 0,
			wantErr:  errors.ErrOverflow,
		},
		"negative": {
			now:      1000,
			duration: -10,
			wantErr:  errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := aswap.ComputeExpiry(tc.now, tc.duration, tc.maxDuration)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
				if got <= tc.now || int64(got) <= tc.duration {
					t.Fatalf("expiry %d not after both %d and %d", got, tc.now, tc.duration)
				}
			}
		})
	}
}

func TestVerifySecret(t *testing.T) {
	secret := []byte("let me in")
	key := aswap.HashBytes(secret)

	assert.Equal(t, aswap.KeyLength, len(key))
	assert.Nil(t, aswap.VerifySecret(key, secret))
	assert.IsErr(t, errors.ErrHashMismatch, aswap.VerifySecret(key, []byte("let me in!")))
	assert.IsErr(t, errors.ErrHashMismatch, aswap.VerifySecret(key[:10], secret))

	assert.Nil(t, aswap.ValidateKey(key))
	assert.IsErr(t, errors.ErrInput, aswap.ValidateKey(key[1:]))
}

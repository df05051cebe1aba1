package pswap_test

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPrinting(t *testing.T) {
	Convey("test hexadecimal address printing", t, func() {
		addr := pswap.Address([]byte("ABCD123456LHB"))
		So(addr.String(), ShouldEqual, fmt.Sprintf("%X", []byte(addr)))
		So(pswap.Address(nil).String(), ShouldEqual, "(nil)")
	})

	Convey("test condition printing", t, func() {
		cond := pswap.NewCondition("aswap", "escrow", []byte{0xca, 0xfe})
		So(cond.String(), ShouldEqual, "aswap/escrow/CAFE")
		So(pswap.Condition("broken").String(), ShouldStartWith, "Invalid Condition")
	})
}

func TestConditionParse(t *testing.T) {
	cond := pswap.NewCondition("aswap", "escrow", []byte("data/with/slash"))
	ext, typ, data, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, "aswap", ext)
	assert.Equal(t, "escrow", typ)
	assert.Equal(t, []byte("data/with/slash"), data)
	assert.NoError(t, cond.Validate())

	_, _, _, err = pswap.Condition("no-slashes").Parse()
	assert.True(t, errors.ErrInput.Is(err))
	assert.True(t, errors.ErrInput.Is(pswap.NewCondition("a", "escrow", nil).Validate()))
}

func TestAddressUnmarshalJSON(t *testing.T) {
	addr := pswap.NewCondition("foo", "bar", []byte("conditiondata")).Address()
	b32, err := addr.Bech32()
	require.NoError(t, err)

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr pswap.Address
	}{
		"default decoding": {
			json:     `"` + hex.EncodeToString(addr) + `"`,
			wantAddr: addr,
		},
		"hex decoding": {
			json:     `"hex:` + addr.String() + `"`,
			wantAddr: addr,
		},
		"bech32 decoding": {
			json:     `"bech32:` + b32 + `"`,
			wantAddr: addr,
		},
		"cond decoding": {
			json:     `"cond:foo/bar/636f6e646974696f6e64617461"`,
			wantAddr: addr,
		},
		"invalid condition format": {
			json:    `"cond:foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"cond:foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"short address": {
			json:    `"6865782d61646472"`,
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			json:    `"foobar:xxx"`,
			wantErr: errors.ErrType,
		},
		"not a string": {
			json:    `42`,
			wantErr: errors.ErrInput,
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a pswap.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !reflect.DeepEqual(a, tc.wantAddr) {
				t.Fatalf("got address: %q", a)
			}
		})
	}
}

func TestAddressJSONRoundTrip(t *testing.T) {
	addr := pswap.NewCondition("foo", "bar", nil).Address()
	raw, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"`+addr.String()+`"`, string(raw))

	var got pswap.Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, addr.Equals(got))
}

func TestAddressClone(t *testing.T) {
	addr := pswap.NewAddress([]byte("owner"))
	cpy := addr.Clone()
	cpy[0]++
	assert.False(t, addr.Equals(cpy))
	assert.Nil(t, pswap.Address(nil).Clone())
	assert.Nil(t, pswap.NewAddress(nil))
	assert.Len(t, addr, pswap.AddressLength)
}

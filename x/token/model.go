package token

import (
	"regexp"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/orm"
)

// IsTicker returns true if given string is a valid token ticker.
var IsTicker = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,15}$`).MatchString

// ValidateTicker returns an error if given value is not a valid ticker.
func ValidateTicker(ticker string) error {
	if !IsTicker(ticker) {
		return errors.Wrapf(errors.ErrInput, "invalid token ticker %q", ticker)
	}
	return nil
}

func (m *Balance) Validate() error {
	return nil
}

func (m *Allowance) Validate() error {
	return nil
}

// NewBalanceBucket returns a bucket that stores balances under
// owner || ticker keys.
func NewBalanceBucket() orm.ModelBucket {
	return orm.NewModelBucket("balance", &Balance{})
}

// NewAllowanceBucket returns a bucket that stores allowances under
// owner || spender || ticker keys.
func NewAllowanceBucket() orm.ModelBucket {
	return orm.NewModelBucket("allowance", &Allowance{})
}

// Addresses are of fixed length so concatenation is unambiguous.
func balanceKey(token string, owner pswap.Address) []byte {
	key := make([]byte, 0, len(owner)+len(token))
	key = append(key, owner...)
	return append(key, token...)
}

func allowanceKey(token string, owner, spender pswap.Address) []byte {
	key := make([]byte, 0, len(owner)+len(spender)+len(token))
	key = append(key, owner...)
	key = append(key, spender...)
	return append(key, token...)
}

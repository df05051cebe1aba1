package token

import (
	"math"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/orm"
)

// Controller is the functionality other extensions need from the ledger.
type Controller interface {
	// BalanceOf returns the amount of token held by the owner. Unknown
	// accounts hold nothing.
	BalanceOf(db pswap.ReadOnlyKVStore, token string, owner pswap.Address) (uint64, error)

	// Transfer moves amount of token from one account to another.
	Transfer(db pswap.KVStore, token string, from, to pswap.Address, amount uint64) error

	// TransferFrom moves amount of token from one account to another on
	// behalf of the spender, consuming the allowance the owner granted.
	TransferFrom(db pswap.KVStore, token string, spender, from, to pswap.Address, amount uint64) error
}

// BaseController is the ledger implementation backed by orm buckets.
type BaseController struct {
	balances   orm.ModelBucket
	allowances orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller using the default buckets.
func NewController() BaseController {
	return BaseController{
		balances:   NewBalanceBucket(),
		allowances: NewAllowanceBucket(),
	}
}

// BalanceOf returns the amount of token held by the owner.
func (c BaseController) BalanceOf(db pswap.ReadOnlyKVStore, token string, owner pswap.Address) (uint64, error) {
	var b Balance
	switch err := c.balances.One(db, balanceKey(token, owner), &b); {
	case err == nil:
		return b.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "balance")
	}
}

// Allowance returns the amount of token the spender may move from the owner's
// account.
func (c BaseController) Allowance(db pswap.ReadOnlyKVStore, token string, owner, spender pswap.Address) (uint64, error) {
	var a Allowance
	switch err := c.allowances.One(db, allowanceKey(token, owner, spender), &a); {
	case err == nil:
		return a.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "allowance")
	}
}

// Approve sets the allowance of the spender. Zero amount revokes it.
func (c BaseController) Approve(db pswap.KVStore, token string, owner, spender pswap.Address, amount uint64) error {
	if err := ValidateTicker(token); err != nil {
		return err
	}
	key := allowanceKey(token, owner, spender)
	if amount == 0 {
		err := c.allowances.Delete(db, key)
		if errors.ErrNotFound.Is(err) {
			return nil
		}
		return err
	}
	return c.allowances.Put(db, key, &Allowance{Amount: amount})
}

// Issue creates new tokens on the destination account. It fails if the
// balance would overflow.
func (c BaseController) Issue(db pswap.KVStore, token string, dest pswap.Address, amount uint64) error {
	if err := ValidateTicker(token); err != nil {
		return err
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	have, err := c.BalanceOf(db, token, dest)
	if err != nil {
		return err
	}
	if have > math.MaxUint64-amount {
		return errors.Wrapf(errors.ErrOverflow, "%d + %d %s", have, amount, token)
	}
	return c.balances.Put(db, balanceKey(token, dest), &Balance{Amount: have + amount})
}

// Transfer moves amount of token from one account to another.
func (c BaseController) Transfer(db pswap.KVStore, token string, from, to pswap.Address, amount uint64) error {
	if err := ValidateTicker(token); err != nil {
		return err
	}
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive transfer")
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	srcAmount, err := c.BalanceOf(db, token, from)
	if err != nil {
		return err
	}
	if srcAmount < amount {
		return errors.Wrapf(errors.ErrInsufficientFunds, "%s has %d %s, need %d", from, srcAmount, token, amount)
	}
	if from.Equals(to) {
		return nil
	}
	dstAmount, err := c.BalanceOf(db, token, to)
	if err != nil {
		return err
	}
	if dstAmount > math.MaxUint64-amount {
		return errors.Wrapf(errors.ErrOverflow, "%d + %d %s", dstAmount, amount, token)
	}

	if err := c.balances.Put(db, balanceKey(token, from), &Balance{Amount: srcAmount - amount}); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := c.balances.Put(db, balanceKey(token, to), &Balance{Amount: dstAmount + amount}); err != nil {
		return errors.Wrap(err, "destination")
	}
	return nil
}

// TransferFrom moves amount of token on behalf of the spender. The allowance
// is reduced by the amount moved.
func (c BaseController) TransferFrom(db pswap.KVStore, token string, spender, from, to pswap.Address, amount uint64) error {
	allowed, err := c.Allowance(db, token, from, spender)
	if err != nil {
		return err
	}
	if allowed < amount {
		return errors.Wrapf(errors.ErrUnauthorized, "%s may spend %d %s of %s, need %d", spender, allowed, token, from, amount)
	}
	if err := c.Transfer(db, token, from, to, amount); err != nil {
		return err
	}
	return c.Approve(db, token, from, spender, allowed-amount)
}

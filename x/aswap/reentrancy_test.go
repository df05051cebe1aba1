package aswap_test

import (
	"testing"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/weavetest/assert"
	"github.com/iov-one/pswap/x/aswap"
	"github.com/iov-one/pswap/x/token"
)

// callbackLedger calls onTransfer before every payout, the way a token with
// transfer hooks would hand control to the recipient.
type callbackLedger struct {
	token.BaseController
	onTransfer func(db pswap.KVStore)
}

func (l *callbackLedger) Transfer(db pswap.KVStore, ticker string, from, to pswap.Address, amount uint64) error {
	if l.onTransfer != nil {
		cb := l.onTransfer
		// Only the outermost transfer calls back.
		l.onTransfer = nil
		cb(db)
	}
	return l.BaseController.Transfer(db, ticker, from, to, amount)
}

func TestReentrantRedeemIsRejected(t *testing.T) {
	f := deposited(t)
	ledger := &callbackLedger{BaseController: f.ledger}
	ctrl := aswap.NewController(ledger, f.events)

	var nestedErr error
	ledger.onTransfer = func(db pswap.KVStore) {
		nestedErr = ctrl.RedeemAsset(f.at(10), db, f.participant, f.key, f.secret)
	}

	assert.Nil(t, ctrl.RedeemAsset(f.at(10), f.db, f.participant, f.key, f.secret))
	assert.IsErr(t, aswap.ErrReentrant, nestedErr)

	// Paid exactly once.
	assert.Equal(t, uint64(initialBalance+100), f.balance(t, tokenA, f.participant))
	assert.Equal(t, uint64(0), f.balance(t, tokenA, aswap.EscrowAddress))
	assert.Equal(t, aswap.StateRedeemed, f.state(t).InitiatorAsset.State)
}

// The swap state is written before the payout, so a nested call that is
// not stopped by the busy check still observes the settled record.
func TestStateIsWrittenBeforePayout(t *testing.T) {
	f := deposited(t)
	ledger := &callbackLedger{BaseController: f.ledger}
	ctrl := aswap.NewController(ledger, f.events)
	other := aswap.NewController(f.ledger, nil)

	var nestedErr error
	ledger.onTransfer = func(db pswap.KVStore) {
		nestedErr = other.RedeemAsset(f.at(10), db, f.participant, f.key, f.secret)
	}

	assert.Nil(t, ctrl.RedeemAsset(f.at(10), f.db, f.participant, f.key, f.secret))
	assert.IsErr(t, errors.ErrState, nestedErr)
	assert.Equal(t, uint64(initialBalance+100), f.balance(t, tokenA, f.participant))
}

func TestFailedPayoutLeavesNoState(t *testing.T) {
	f := deposited(t)
	ledger := &failingLedger{BaseController: f.ledger}
	ctrl := aswap.NewController(ledger, f.events)
	emitted := len(f.events.Events())

	err := ctrl.RedeemAsset(f.at(10), f.db, f.participant, f.key, f.secret)
	assert.IsErr(t, errors.ErrDatabase, err)

	s := f.state(t)
	assert.Equal(t, aswap.StateFilled, s.InitiatorAsset.State)
	assert.Equal(t, 0, len(s.Swap.Secret))
	assert.Equal(t, emitted, len(f.events.Events()))
	assert.Equal(t, uint64(initialBalance), f.balance(t, tokenA, f.participant))
}

type failingLedger struct {
	token.BaseController
}

func (failingLedger) Transfer(pswap.KVStore, string, pswap.Address, pswap.Address, uint64) error {
	return errors.Wrap(errors.ErrDatabase, "ledger unavailable")
}

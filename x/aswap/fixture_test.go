package aswap_test

import (
	"testing"
	"time"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/store"
	"github.com/iov-one/pswap/weavetest"
	"github.com/iov-one/pswap/weavetest/assert"
	"github.com/iov-one/pswap/x/aswap"
	"github.com/iov-one/pswap/x/token"
)

var blockNow = time.Date(2020, time.March, 1, 12, 0, 0, 0, time.UTC)

const (
	tokenA = "TA"
	tokenB = "TB"

	initialBalance = 1000
)

// fixture is a ledger with two funded parties that approved the escrow, and
// a controller recording all events.
type fixture struct {
	db          pswap.CacheableKVStore
	ledger      token.BaseController
	events      *aswap.EventRecorder
	ctrl        *aswap.Controller
	initiator   pswap.Address
	participant pswap.Address
	conds       map[string]pswap.Condition
	secret      []byte
	key         []byte
}

func newFixture(t testing.TB) *fixture {
	t.Helper()

	alice, bob := weavetest.NewCondition(), weavetest.NewCondition()
	f := &fixture{
		db:          store.MemStore(),
		ledger:      token.NewController(),
		events:      &aswap.EventRecorder{},
		initiator:   alice.Address(),
		participant: bob.Address(),
		conds: map[string]pswap.Condition{
			alice.Address().String(): alice,
			bob.Address().String():   bob,
		},
		secret: []byte("the secret only the initiator knows"),
	}
	f.key = aswap.HashBytes(f.secret)
	f.ctrl = aswap.NewController(f.ledger, f.events)

	for _, addr := range []pswap.Address{f.initiator, f.participant} {
		for _, ticker := range []string{tokenA, tokenB} {
			assert.Nil(t, f.ledger.Issue(f.db, ticker, addr, initialBalance))
			assert.Nil(t, f.ledger.Approve(f.db, ticker, addr, aswap.EscrowAddress, initialBalance))
		}
	}
	return f
}

// at returns a block context offset seconds after blockNow.
func (f *fixture) at(offset int64) pswap.Context {
	return weavetest.Context(blockNow.Add(time.Duration(offset) * time.Second))
}

// signedBy returns a block context authenticated by the owner of addr.
func (f *fixture) signedBy(auth *weavetest.CtxAuth, offset int64, addr pswap.Address) pswap.Context {
	return auth.SetConditions(f.at(offset), f.conds[addr.String()])
}

func (f *fixture) terms() aswap.Terms {
	return aswap.Terms{
		Initiator:         f.initiator,
		Participant:       f.participant,
		TokenA:            tokenA,
		TokenB:            tokenB,
		InitiatorAmount:   100,
		ParticipantAmount: 50,
		PremiumAmount:     10,
	}
}

func (f *fixture) setup(t testing.TB) {
	t.Helper()
	assert.Nil(t, f.ctrl.Setup(f.at(0), f.db, f.initiator, f.key, f.terms()))
}

func (f *fixture) state(t testing.TB) *aswap.SwapState {
	t.Helper()
	s, err := f.ctrl.Swap(f.db, f.key)
	assert.Nil(t, err)
	return s
}

func (f *fixture) balance(t testing.TB, ticker string, owner pswap.Address) uint64 {
	t.Helper()
	b, err := f.ledger.BalanceOf(f.db, ticker, owner)
	assert.Nil(t, err)
	return b
}

func unix(offset int64) pswap.UnixTime {
	return pswap.AsUnixTime(blockNow) + pswap.UnixTime(offset)
}

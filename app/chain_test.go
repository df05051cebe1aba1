package app

import (
	"context"
	"testing"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/weavetest"
	"github.com/iov-one/pswap/x/utils"
	"github.com/stretchr/testify/assert"
)

// panicAt panics in Deliver once the block height reaches given value.
type panicAt int64

func (p panicAt) Check(ctx pswap.Context, db pswap.KVStore, tx pswap.Tx, next pswap.Checker) (*pswap.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (p panicAt) Deliver(ctx pswap.Context, db pswap.KVStore, tx pswap.Tx, next pswap.Deliverer) (*pswap.DeliverResult, error) {
	if h, _ := pswap.GetHeight(ctx); h >= int64(p) {
		panic("too high")
	}
	return next.Deliver(ctx, db, tx)
}

func TestChain(t *testing.T) {
	c1 := &weavetest.Decorator{}
	c2 := &weavetest.Decorator{}
	var skipped *weavetest.Decorator
	h := &weavetest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		skipped,
		panicAt(6),
		c2,
	).WithHandler(h)

	bg := context.Background()
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/chain"}}
	_, err := stack.Check(bg, nil, tx)
	assert.NoError(t, err)
	_, err = stack.Deliver(pswap.WithHeight(bg, 4), nil, tx)
	assert.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// the panic is recovered and never reaches c2
	_, err = stack.Deliver(pswap.WithHeight(bg, 8), nil, tx)
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Equal(t, 3, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainErrorStopsExecution(t *testing.T) {
	d := &weavetest.Decorator{DeliverErr: errors.ErrUnauthorized}
	h := &weavetest.Handler{}
	stack := ChainDecorators(d).Chain(&weavetest.Decorator{}).WithHandler(h)

	_, err := stack.Deliver(context.Background(), nil, nil)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 0, h.DeliverCallCount())

	_, err = stack.Check(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
}

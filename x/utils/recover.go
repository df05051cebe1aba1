package utils

import (
	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
)

// Recovery converts a panic raised by any handler down the chain into an
// ErrPanic result. The panic value and the message path are written to the
// context logger, the caller only gets the redacted error.
type Recovery struct{}

var _ pswap.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (r Recovery) Check(ctx pswap.Context, store pswap.KVStore, tx pswap.Tx, next pswap.Checker) (_ *pswap.CheckResult, err error) {
	defer recovered(ctx, tx, "check", &err)
	return next.Check(ctx, store, tx)
}

func (r Recovery) Deliver(ctx pswap.Context, store pswap.KVStore, tx pswap.Tx, next pswap.Deliverer) (_ *pswap.DeliverResult, err error) {
	defer recovered(ctx, tx, "deliver", &err)
	return next.Deliver(ctx, store, tx)
}

// recovered must be deferred directly, recover is a no-op anywhere else.
func recovered(ctx pswap.Context, tx pswap.Tx, phase string, err *error) {
	p := recover()
	if p == nil {
		return
	}
	path := "(missing)"
	if tx != nil {
		path = pswap.GetPath(tx)
	}
	full := errors.Wrapf(errors.ErrPanic, "%v", p)
	pswap.GetLogger(ctx).Error("panic", "phase", phase, "path", path, "err", full)
	*err = errors.Redact(full)
}

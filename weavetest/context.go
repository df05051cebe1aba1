package weavetest

import (
	"context"
	"time"

	"github.com/iov-one/pswap"
)

// Context returns a context with the block time and height set, as any
// handler processing a transaction expects.
func Context(now time.Time) pswap.Context {
	ctx := pswap.WithHeight(context.Background(), 1)
	return pswap.WithBlockTime(ctx, now)
}

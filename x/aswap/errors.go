package aswap

import "github.com/iov-one/pswap/errors"

var (
	// ErrPremiumNotFilled is returned when an operation requires the
	// premium deposit and it was not made yet.
	ErrPremiumNotFilled = errors.Register(1000, "premium not filled")

	// ErrReentrant is returned when an operation is called for a swap that
	// is already being processed by another call up the stack.
	ErrReentrant = errors.Register(1001, "reentrant call")
)

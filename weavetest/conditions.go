package weavetest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/iov-one/pswap"
)

var condCounter uint64

// NewCondition returns a unique condition every time it is called. Use it to
// create test participants.
func NewCondition() pswap.Condition {
	n := atomic.AddUint64(&condCounter, 1)
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, n)
	return pswap.NewCondition("test", "weavetest", data)
}

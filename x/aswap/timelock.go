package aswap

import (
	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
)

// ComputeExpiry returns now + duration. Durations that wrap around, and so
// also zero or negative durations, fail with ErrOverflow. A positive
// maxDuration limits how long a deposit can be locked.
func ComputeExpiry(now pswap.UnixTime, duration int64, maxDuration int64) (pswap.UnixTime, error) {
	expiry, err := now.AddSeconds(duration)
	if err != nil {
		return 0, errors.Wrap(err, "expiry")
	}
	if maxDuration > 0 && duration > maxDuration {
		return 0, errors.Wrapf(errors.ErrInput, "duration %ds exceeds the limit of %ds", duration, maxDuration)
	}
	return expiry, nil
}

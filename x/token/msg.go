package token

import (
	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
)

const (
	pathSendMsg    = "token/send"
	pathApproveMsg = "token/approve"

	maxMemoSize = 128
)

var _ pswap.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message.
func (SendMsg) Path() string {
	return pathSendMsg
}

// Validate makes sure that this is sensible.
func (m *SendMsg) Validate() error {
	if err := ValidateTicker(m.Token); err != nil {
		return err
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive SendMsg")
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if len(m.Memo) > maxMemoSize {
		return errors.Wrapf(errors.ErrInput, "memo too long: %d", len(m.Memo))
	}
	return nil
}

var _ pswap.Msg = (*ApproveMsg)(nil)

// Path returns the routing path for this message.
func (ApproveMsg) Path() string {
	return pathApproveMsg
}

// Validate makes sure that this is sensible. A zero amount revokes the
// allowance.
func (m *ApproveMsg) Validate() error {
	if err := ValidateTicker(m.Token); err != nil {
		return err
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := m.Spender.Validate(); err != nil {
		return errors.Wrap(err, "spender")
	}
	if m.Owner.Equals(m.Spender) {
		return errors.Wrap(errors.ErrInput, "owner cannot approve itself")
	}
	return nil
}

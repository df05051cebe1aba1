package aswap

import (
	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
)

// transitions lists every allowed lifecycle move. Terminal states have no
// entry.
var transitions = map[State][]State{
	StateEmpty:  {StateFilled},
	StateFilled: {StateRedeemed, StateRefunded},
}

// CanTransition returns true if a record in state from may move to state to.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transition is possible.
func (s State) IsTerminal() bool {
	return s == StateRedeemed || s == StateRefunded
}

// Validate returns an error if the state is not known.
func (s State) Validate() error {
	if _, ok := stateName[s]; !ok {
		return errors.Wrapf(errors.ErrState, "unknown state %d", s)
	}
	return nil
}

func (r *AssetRecord) moveTo(to State) error {
	if !CanTransition(r.State, to) {
		return errors.Wrapf(errors.ErrState, "cannot move from %s to %s", r.State, to)
	}
	r.State = to
	return nil
}

// Fill marks the record as deposited, locked until expiry.
func (r *AssetRecord) Fill(expiry pswap.UnixTime) error {
	if err := r.moveTo(StateFilled); err != nil {
		return err
	}
	r.Expiry = expiry
	return nil
}

// Redeem marks the deposit as paid out to the counterparty.
func (r *AssetRecord) Redeem() error {
	return r.moveTo(StateRedeemed)
}

// Refund marks the deposit as returned to its depositor.
func (r *AssetRecord) Refund() error {
	return r.moveTo(StateRefunded)
}

// Validate ensures the record is consistent.
func (r *AssetRecord) Validate() error {
	if err := r.State.Validate(); err != nil {
		return err
	}
	if r.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "amount is required")
	}
	if err := r.Expiry.Validate(); err != nil {
		return errors.Wrap(err, "expiry")
	}
	switch {
	case r.State == StateEmpty && r.Expiry != 0:
		return errors.Wrap(errors.ErrState, "empty record cannot have expiry")
	case r.State != StateEmpty && r.Expiry == 0:
		return errors.Wrap(errors.ErrState, "filled record must have expiry")
	}
	return nil
}

package aswap

import (
	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
)

// guard is a single precondition of an operation.
type guard func() error

// checkAll runs guards in order and returns the first failure.
func checkAll(guards ...guard) error {
	for _, g := range guards {
		if err := g(); err != nil {
			return err
		}
	}
	return nil
}

func callerIs(caller, want pswap.Address, role string) guard {
	return func() error {
		if !caller.Equals(want) {
			return errors.Wrapf(errors.ErrUnauthorized, "caller is not the %s", role)
		}
		return nil
	}
}

func recordIn(s *SwapState, kind RecordKind, want State) guard {
	return func() error {
		if got := s.Record(kind).State; got != want {
			return errors.Wrapf(errors.ErrState, "%s is %s, want %s", kind, got, want)
		}
		return nil
	}
}

func recordTerminal(s *SwapState, kind RecordKind) guard {
	return func() error {
		if got := s.Record(kind).State; !got.IsTerminal() {
			return errors.Wrapf(errors.ErrState, "%s is %s, want settled", kind, got)
		}
		return nil
	}
}

// premiumFilled requires the premium to be deposited and not settled.
func premiumFilled(s *SwapState) guard {
	return func() error {
		switch s.Premium.State {
		case StateFilled:
			return nil
		case StateEmpty:
			return errors.Wrap(ErrPremiumNotFilled, "premium")
		default:
			return errors.Wrapf(errors.ErrState, "premium is %s", s.Premium.State)
		}
	}
}

// notExpired requires the block time to be at or before the record expiry.
func notExpired(ctx pswap.Context, s *SwapState, kind RecordKind) guard {
	return func() error {
		if exp := s.Record(kind).Expiry; pswap.IsExpired(ctx, exp) {
			return errors.Wrapf(errors.ErrExpired, "%s expired at %s", kind, exp)
		}
		return nil
	}
}

// expired requires the block time to be after the record expiry.
func expired(ctx pswap.Context, s *SwapState, kind RecordKind) guard {
	return func() error {
		if exp := s.Record(kind).Expiry; !pswap.IsExpired(ctx, exp) {
			return errors.Wrapf(errors.ErrNotYetExpired, "%s expires at %s", kind, exp)
		}
		return nil
	}
}

func secretMatches(key, secret []byte, maxLength int32) guard {
	return func() error {
		if err := validateSecret(secret, maxLength); err != nil {
			return err
		}
		return VerifySecret(key, secret)
	}
}

func covers(ledger Ledger, db pswap.ReadOnlyKVStore, ticker string, owner pswap.Address, amount uint64) guard {
	return func() error {
		have, err := ledger.BalanceOf(db, ticker, owner)
		if err != nil {
			return errors.Wrap(err, "balance")
		}
		if have < amount {
			return errors.Wrapf(errors.ErrInsufficientFunds, "have %d %s, need %d", have, ticker, amount)
		}
		return nil
	}
}
